package config

// TransportType defines MCP server transport types.
type TransportType string

// Transport types. Only stdio is dispatched natively; the remote
// transports are tunnelled through a locally spawned proxy command.
const (
	TransportStdio TransportType = "stdio"
	TransportTCP   TransportType = "tcp"
	TransportSSH   TransportType = "ssh"
	TransportHTTPS TransportType = "https"
	TransportHTTP  TransportType = "http"
)

// IsValid checks if the transport type is valid.
func (t TransportType) IsValid() bool {
	switch t {
	case TransportStdio, TransportTCP, TransportSSH, TransportHTTPS, TransportHTTP:
		return true
	default:
		return false
	}
}

// ExecutionMode defines where a tool adapter runs.
type ExecutionMode string

// Execution modes.
const (
	ExecutionModeCloud ExecutionMode = "cloud"
	ExecutionModeLocal ExecutionMode = "local"
)

// IsValid checks if the execution mode is valid.
func (m ExecutionMode) IsValid() bool {
	return m == ExecutionModeCloud || m == ExecutionModeLocal
}

// AdapterKind selects the adapter implementation.
type AdapterKind string

// Adapter kinds.
const (
	AdapterKindCLI  AdapterKind = "cli"
	AdapterKindHTTP AdapterKind = "http"
	AdapterKindGRPC AdapterKind = "grpc"
	AdapterKindMCP  AdapterKind = "mcp"
)

// IsValid checks if the adapter kind is valid.
func (k AdapterKind) IsValid() bool {
	switch k {
	case AdapterKindCLI, AdapterKindHTTP, AdapterKindGRPC, AdapterKindMCP:
		return true
	default:
		return false
	}
}

// DiffQuality grades how well an adapter produces unified diffs.
type DiffQuality string

// Diff qualities.
const (
	DiffQualityLow    DiffQuality = "low"
	DiffQualityMedium DiffQuality = "medium"
	DiffQualityHigh   DiffQuality = "high"
)

// IsValid checks if the diff quality is valid.
func (q DiffQuality) IsValid() bool {
	return q == DiffQualityLow || q == DiffQualityMedium || q == DiffQualityHigh
}
