package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `--- a/pkg/server/handler.go
+++ b/pkg/server/handler.go
@@ -10,7 +10,8 @@ func handle(w http.ResponseWriter, r *http.Request) {
 	ctx := r.Context()
-	result := process(ctx)
+	result, err := process(ctx)
+	_ = err
 	respond(w, result)
--- a/pkg/server/process.go
+++ b/pkg/server/process.go
@@ -1,3 +1,4 @@
+// process does the work.
 func process(ctx context.Context) string {
`

func TestValidateDiff(t *testing.T) {
	t.Run("valid diff", func(t *testing.T) {
		v := ValidateDiff(sampleDiff, nil)
		assert.True(t, v.OK())
		assert.Equal(t, []string{"pkg/server/handler.go", "pkg/server/process.go"}, v.FilesTouched)
		assert.Equal(t, 4, v.LineCount)
	})

	t.Run("empty diff", func(t *testing.T) {
		v := ValidateDiff("   \n", nil)
		assert.False(t, v.OK())
		assert.False(t, v.Parseable)
		require.NotEmpty(t, v.Errors)
		assert.Contains(t, v.Errors[0], "empty")
	})

	t.Run("prose is not a diff", func(t *testing.T) {
		v := ValidateDiff("I changed handler.go to return errors.", nil)
		assert.False(t, v.OK())
		assert.False(t, v.Parseable)
	})

	t.Run("headers without hunks", func(t *testing.T) {
		v := ValidateDiff("--- a/x.go\n+++ b/x.go\n", nil)
		assert.False(t, v.OK())
	})

	t.Run("allow-list pass", func(t *testing.T) {
		v := ValidateDiff(sampleDiff, []string{"pkg/"})
		assert.True(t, v.OK())
		assert.True(t, v.AllowListOK)
	})

	t.Run("allow-list violation", func(t *testing.T) {
		v := ValidateDiff(sampleDiff, []string{"cmd/"})
		assert.False(t, v.OK())
		assert.True(t, v.Parseable, "parse succeeds; the paths are the problem")
		assert.False(t, v.AllowListOK)
		assert.Contains(t, v.Errors[0], "outside allow-list")
	})

	t.Run("deletion uses the old path", func(t *testing.T) {
		diff := "--- a/pkg/dead.go\n+++ /dev/null\n@@ -1,2 +0,0 @@\n-package pkg\n-var dead = true\n"
		v := ValidateDiff(diff, []string{"pkg/"})
		assert.True(t, v.OK())
		assert.Equal(t, []string{"pkg/dead.go"}, v.FilesTouched)
	})
}
