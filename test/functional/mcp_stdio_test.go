package functional_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// stdioSession wraps an MCP client session for stdio transport testing
type stdioSession struct {
	session *sdkmcp.ClientSession
	cancel  context.CancelFunc
}

func newStdioSession(t *testing.T) *stdioSession {
	t.Helper()
	return newStdioSessionWithEnv(t, nil)
}

func newStdioSessionWithEnv(t *testing.T, extraEnv []string) *stdioSession {
	t.Helper()

	// Find the binary
	binaryPath := "./bin/rolodex"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/rolodex"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'make build' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"ROLODEX_TRANSPORT=stdio",
		"ROLODEX_DB_PATH=:memory:",
		"ROLODEX_AUTH_ENABLED=false",
	)
	if len(extraEnv) > 0 {
		cmd.Env = append(cmd.Env, extraEnv...)
	}

	transport := &sdkmcp.CommandTransport{Command: cmd}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		cancel()
		t.Fatalf("Failed to connect: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
		cancel()
	})

	return &stdioSession{session: session, cancel: cancel}
}

func (s *stdioSession) callTool(t *testing.T, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := s.session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func TestStdioFunctional_ResolveWorkflow(t *testing.T) {
	s := newStdioSession(t)

	create := s.callTool(t, "create_project", map[string]any{"name": "Project"})
	require.NotEmpty(t, create)

	first := s.callTool(t, "resolve_person", map[string]any{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	var created struct {
		Person struct {
			ID string `json:"id"`
		} `json:"person"`
		Created bool `json:"created"`
	}
	require.NoError(t, json.Unmarshal(first, &created))
	require.True(t, created.Created)

	second := s.callTool(t, "resolve_person", map[string]any{
		"email": "JANE@example.com",
	})
	var matched struct {
		Person struct {
			ID string `json:"id"`
		} `json:"person"`
		Created   bool   `json:"created"`
		MatchedBy string `json:"matched_by"`
	}
	require.NoError(t, json.Unmarshal(second, &matched))
	require.False(t, matched.Created)
	require.Equal(t, "email", matched.MatchedBy)
	require.Equal(t, created.Person.ID, matched.Person.ID)

	list := s.callTool(t, "list_persons", nil)
	require.Contains(t, string(list), created.Person.ID)
}

func TestStdioFunctional_MCPProtocolCompliance(t *testing.T) {
	s := newStdioSession(t)

	initResult := s.session.InitializeResult()
	require.NotNil(t, initResult)
	require.NotNil(t, initResult.ServerInfo)
	require.Equal(t, "rolodex", initResult.ServerInfo.Name)
	require.Equal(t, "0.1.0", initResult.ServerInfo.Version)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := s.session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tools.Tools), 11, "should expose the full tool set")

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
	}

	require.Contains(t, toolMap, "resolve_person")
	require.Contains(t, toolMap, "run_import")
	require.Contains(t, toolMap, "attach_platform_identity")
	require.NotEmpty(t, toolMap["resolve_person"].Description)
}

func TestStdioFunctional_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "rolodex.log")
	s := newStdioSessionWithEnv(t, []string{
		"ROLODEX_LOG_PATH=" + logPath,
		"ROLODEX_LOG_LEVEL=debug",
	})

	_ = s.callTool(t, "list_projects", nil)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logPath)
		if err != nil {
			return false
		}
		text := string(data)
		return strings.Contains(text, `msg="mcp traffic"`) &&
			strings.Contains(text, "stage=request") &&
			strings.Contains(text, "stage=response")
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStdioFunctional_DocumentationResources(t *testing.T) {
	s := newStdioSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resources, err := s.session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, resources.Resources)

	uris := make(map[string]*sdkmcp.Resource, len(resources.Resources))
	for _, r := range resources.Resources {
		uris[r.URI] = r
	}

	expected := []string{
		"rolodex://docs/index",
		"rolodex://docs/matching",
		"rolodex://docs/workflows/import",
	}
	for _, uri := range expected {
		r, ok := uris[uri]
		require.True(t, ok, "missing expected doc resource: %s", uri)
		require.NotEmpty(t, r.Name)
		require.Equal(t, "text/markdown", r.MIMEType)
		require.Greater(t, r.Size, int64(0))
	}

	read, err := s.session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "rolodex://docs/index"})
	require.NoError(t, err)
	require.NotEmpty(t, read.Contents)
	require.Equal(t, "rolodex://docs/index", read.Contents[0].URI)
	require.Contains(t, read.Contents[0].Text, "Agent Docs Index")
}
