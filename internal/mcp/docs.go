package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `rolodex resolves partial contact descriptions to canonical Person records.

Core concepts (keep this mental model small):
- Tenant + Project: the scope. All matching and uniqueness happen inside one (tenant, project) pair.
- Person: the canonical record for one human. Holds display name, email, company, and platform identities.
- Platform identity: a (platform, user_id) pair, e.g. a Zoom user id. One user id per platform per person.
- Resolution: the outcome of resolve_person. Either a match (with the signal that matched) or a freshly created person.

Matching rules (fixed, strictest-first):
1) email: normalized (trimmed, lower-cased) exact equality.
2) platform identity: exact (platform, user_id) equality.
3) name + company: case-folded equality. Company may be empty on both sides.
A signal that is absent from the input is skipped, never counted as a miss. The first hit wins; later signals are not consulted. There is no fuzzy matching.

Rules of engagement (default workflow):
1) Orient: call get_project (default project unless id provided) or list_projects.
2) Resolve as you observe: call resolve_person with whatever partial fields the interaction surfaced. Include platform + platform_user_id when available so future sightings match on the strong signal.
3) Bulk loads: use run_import with a contacts array; check the returned counters, then get_import / list_imports for history.
4) Link identities explicitly: attach_platform_identity when you learn a person's id on a new platform.
5) Audit: get_recent_activity shows how each person was created or matched, with the winning signal.

Transport notes:
- HTTP: pass a bearer token via Authorization when auth is enabled; tag provenance via the X-Ingest-Source header.
- Stdio: auth is disabled; tag provenance via _meta.source or the source argument.

Docs (progressive disclosure):
- rolodex://docs/index (what to read when)
- rolodex://docs/matching (cascade semantics and edge cases)
- rolodex://docs/workflows/import (bulk import playbook)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "rolodex://docs/index",
		Name:        "docs_index",
		Title:       "rolodex docs index",
		Description: "Entry point for agent-facing docs: what exists, what to read, and known limitations.",
		Content: `# rolodex: Agent Docs Index

This server is designed for **progressive disclosure**: keep your baseline context small and load deeper docs only when needed.

## Quick start (no deep docs)

1. ` + "`get_project`" + ` to orient (the default project is created lazily).
2. ` + "`resolve_person`" + ` for every contact you observe; the server decides match-or-create.
3. ` + "`run_import`" + ` for batches; inspect the returned counters.
4. ` + "`attach_platform_identity`" + ` when you learn a person's id on a new platform.
5. ` + "`get_recent_activity`" + ` to audit how records came to be.

## Docs (read on demand)

- ` + "`rolodex://docs/matching`" + `: exact cascade semantics, normalization, and race behavior.
- ` + "`rolodex://docs/workflows/import`" + `: bulk import playbook and failure handling.

## Capabilities & intentional limitations

- Matching is exact equality only (after normalization). There is no fuzzy or probabilistic matching.
- Persons are never merged or deleted by the server; a wrong match can only be corrected upstream.
- ` + "`list_persons`" + ` can return large result sets if you omit ` + "`limit`" + `; use limits to control token usage.
`,
	},
	{
		URI:         "rolodex://docs/matching",
		Name:        "docs_matching",
		Title:       "Matching semantics",
		Description: "The match cascade: signal priority, normalization rules, and concurrent-resolution behavior.",
		Content: `# Matching semantics

## The cascade

Signals are tried in a fixed order; the first hit wins and later signals are never consulted:

1. **email**: compared after trimming and lower-casing. The stored record keeps its original casing.
2. **platform identity**: the (platform, user_id) pair compared exactly. User ids are opaque tokens; no case folding.
3. **name + company**: both compared after Unicode case folding. An input with a name but no company only matches persons whose company is also empty-or-equal under folding.

A signal absent from the input **skips** its stage. An input with only a name never touches the email or platform stages.

## Creation

If no stage hits, a new person is created with whatever fields were supplied. The response carries ` + "`created: true`" + ` and ` + "`matched_by: \"created\"`" + `.

## Ties

When several stored persons carry the same name+company key, the **oldest** record wins, deterministically.

## Concurrency

Two simultaneous resolves of the same identity converge on one person: the loser of the insert race re-runs the cascade and returns the winner. Only inputs with *no* strong signal (no email, no platform id) can produce duplicates under racing; batch imports of such weak inputs should be serialized upstream if that matters.
`,
	},
	{
		URI:         "rolodex://docs/workflows/import",
		Name:        "docs_workflow_import",
		Title:       "Bulk import workflow",
		Description: "How to load a batch of contacts and interpret the resulting counters.",
		Content: `# Bulk import workflow

## Playbook

1. Pick or create the target project (` + "`get_project`" + ` / ` + "`create_project`" + `).
2. Call ` + "`run_import`" + ` with a ` + "`contacts`" + ` array and a ` + "`source`" + ` tag (e.g. "crm", "calendar"). Each contact takes the same fields as ` + "`resolve_person`" + `.
3. Read the returned job: ` + "`total`" + `, ` + "`created`" + `, ` + "`matched`" + `, ` + "`failed`" + `.
4. A job finishes ` + "`failed`" + ` if any contact failed; the rest of the batch still landed. Re-running the same batch is safe: already-resolved contacts simply match.

## Notes

- Contacts without their own ` + "`source`" + ` inherit the job's source.
- Resolutions inside one batch run concurrently; duplicate contacts in the same file converge on one person when they share an email or platform id.
- ` + "`list_imports`" + ` returns history newest-first; ` + "`get_import`" + ` fetches one job by id.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
