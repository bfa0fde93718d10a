package functional_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dkessler/rolodex/internal/testserver"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// headerTransport injects the bearer token into every request.
type headerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return t.base.RoundTrip(req)
}

func connect(t *testing.T, ts *testserver.TestServer, token string) *sdkmcp.ClientSession {
	t.Helper()

	httpClient := &http.Client{
		Transport: &headerTransport{base: http.DefaultTransport, token: token},
		Timeout:   10 * time.Second,
	}
	transport := &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL,
		HTTPClient: httpClient,
	}

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	session, err := client.Connect(ctx, transport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
		cancel()
	})
	return session
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error: %v", name, result.Content)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func callToolErr(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.True(t, result.IsError, "Tool %s should have returned an error", name)
	require.NotEmpty(t, result.Content)

	textContent, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return textContent.Text
}

func TestFunctional_Authentication(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, "wrong-token")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_projects"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unauthorized")
}

func TestFunctional_ProjectLifecycle(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, ts.Token)

	create := callTool(t, session, "create_project", map[string]any{
		"name":        "CRM Sync",
		"description": "People from the CRM feed",
	})
	var proj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(create, &proj))
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "CRM Sync", proj.Name)

	list := callTool(t, session, "list_projects", nil)
	var listResp struct {
		Projects []struct {
			ID          string `json:"id"`
			PersonCount int    `json:"person_count"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(list, &listResp))
	require.Len(t, listResp.Projects, 1)

	// get_project without id returns the oldest project as default
	get := callTool(t, session, "get_project", map[string]any{})
	require.Contains(t, string(get), proj.ID)
}

func TestFunctional_ResolveWorkflow(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, ts.Token)

	first := callTool(t, session, "resolve_person", map[string]any{
		"name":    "Jane Doe",
		"email":   "Jane@Example.com",
		"company": "Acme",
		"source":  "calendar",
	})
	var created struct {
		Person struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"person"`
		Created   bool   `json:"created"`
		MatchedBy string `json:"matched_by"`
	}
	require.NoError(t, json.Unmarshal(first, &created))
	require.True(t, created.Created)
	require.Equal(t, "created", created.MatchedBy)

	second := callTool(t, session, "resolve_person", map[string]any{
		"email":  "jane@example.com",
		"source": "zoom",
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

	get := callTool(t, session, "get_person", map[string]any{"id": created.Person.ID})
	require.Contains(t, string(get), "Jane Doe")

	list := callTool(t, session, "list_persons", map[string]any{})
	var persons struct {
		Persons []struct {
			ID string `json:"id"`
		} `json:"persons"`
	}
	require.NoError(t, json.Unmarshal(list, &persons))
	require.Len(t, persons.Persons, 1)
}

func TestFunctional_AttachPlatformIdentity(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, ts.Token)

	resolveResp := callTool(t, session, "resolve_person", map[string]any{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	var resolution struct {
		Person struct {
			ID string `json:"id"`
		} `json:"person"`
	}
	require.NoError(t, json.Unmarshal(resolveResp, &resolution))

	attach := callTool(t, session, "attach_platform_identity", map[string]any{
		"person_id":        resolution.Person.ID,
		"platform":         "slack",
		"platform_user_id": "U123",
	})
	require.Contains(t, string(attach), "U123")

	// A platform-only sighting now lands on the same person
	match := callTool(t, session, "resolve_person", map[string]any{
		"platform":         "slack",
		"platform_user_id": "U123",
	})
	var matched struct {
		Person struct {
			ID string `json:"id"`
		} `json:"person"`
		MatchedBy string `json:"matched_by"`
	}
	require.NoError(t, json.Unmarshal(match, &matched))
	require.Equal(t, "platform_id", matched.MatchedBy)
	require.Equal(t, resolution.Person.ID, matched.Person.ID)

	errText := callToolErr(t, session, "get_person", map[string]any{"id": "nope"})
	require.Contains(t, errText, "PERSON_NOT_FOUND")
}

func TestFunctional_ImportFlow(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, ts.Token)

	run := callTool(t, session, "run_import", map[string]any{
		"source": "crm",
		"contacts": []map[string]any{
			{"name": "Jane Doe", "email": "jane@example.com"},
			{"name": "Joe Bloggs", "email": "joe@example.com"},
			{"email": "jane@example.com"},
		},
	})
	var job struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Total   int    `json:"total"`
		Created int    `json:"created"`
		Matched int    `json:"matched"`
		Failed  int    `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(run, &job))
	require.Equal(t, "completed", job.Status)
	require.Equal(t, 3, job.Total)
	require.Equal(t, 2, job.Created)
	require.Equal(t, 1, job.Matched)
	require.Equal(t, 0, job.Failed)

	get := callTool(t, session, "get_import", map[string]any{"id": job.ID})
	require.Contains(t, string(get), job.ID)

	list := callTool(t, session, "list_imports", nil)
	require.Contains(t, string(list), job.ID)

	activityResp := callTool(t, session, "get_recent_activity", map[string]any{})
	require.Contains(t, string(activityResp), "import_finished")
}

func TestFunctional_TenantIsolation(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	require.NoError(t, ts.AddAPIKey("token2", "tenant2"))

	session1 := connect(t, ts, "token")
	session2 := connect(t, ts, "token2")

	_ = callTool(t, session1, "resolve_person", map[string]any{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})

	// tenant2 sees no persons even with the same identity
	list := callTool(t, session2, "list_persons", map[string]any{})
	var persons struct {
		Persons []struct {
			ID string `json:"id"`
		} `json:"persons"`
	}
	require.NoError(t, json.Unmarshal(list, &persons))
	require.Empty(t, persons.Persons)

	res := callTool(t, session2, "resolve_person", map[string]any{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	var resolution struct {
		Created bool `json:"created"`
	}
	require.NoError(t, json.Unmarshal(res, &resolution))
	require.True(t, resolution.Created)
}

func TestFunctional_ToolCatalog(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, ts.Token)

	initResult := session.InitializeResult()
	require.NotNil(t, initResult)
	require.Equal(t, "rolodex", initResult.ServerInfo.Name)
	require.Equal(t, "0.1.0", initResult.ServerInfo.Version)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
		require.NotEmpty(t, tool.Description, "tool %s should have description", tool.Name)
	}

	expected := []string{
		"resolve_person",
		"get_person",
		"list_persons",
		"attach_platform_identity",
		"create_project",
		"get_project",
		"list_projects",
		"run_import",
		"get_import",
		"list_imports",
		"get_recent_activity",
	}
	for _, name := range expected {
		require.Contains(t, toolMap, name)
	}
}

func TestFunctional_DocumentationResources(t *testing.T) {
	ts := testserver.New(t, "token", "tenant1")
	session := connect(t, ts, ts.Token)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resources, err := session.ListResources(ctx, nil)
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

	read, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "rolodex://docs/matching"})
	require.NoError(t, err)
	require.NotEmpty(t, read.Contents)
	require.Equal(t, "text/markdown", read.Contents[0].MIMEType)
	require.Contains(t, read.Contents[0].Text, "cascade")
}
