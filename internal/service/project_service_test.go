package service

import (
	"context"
	"testing"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectFixture struct {
	svc         ProjectService
	projects    *fakeProjectRepo
	timeline    *fakeTimelineRepo
	messages    *fakeMessageRepo
	documents   *fakeDocumentRepo
	clients     *fakeClientRepo
	broadcaster *fakeBroadcaster
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	f := &projectFixture{
		projects:    newFakeProjectRepo(),
		timeline:    newFakeTimelineRepo(),
		messages:    newFakeMessageRepo(),
		documents:   newFakeDocumentRepo(),
		clients:     newFakeClientRepo(),
		broadcaster: &fakeBroadcaster{},
	}
	f.svc = NewProjectService(f.projects, f.timeline, f.messages, f.documents, f.clients, f.broadcaster, nil)
	return f
}

func (f *projectFixture) seedClient(t *testing.T) *repository.Client {
	t.Helper()
	client := &repository.Client{Name: "Dana Whitfield", Email: "dana@acme.test"}
	require.NoError(t, f.clients.Create(context.Background(), client))
	return client
}

func TestProjectCreateDerivesSlug(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Outdoors Storefront"})
	require.NoError(t, err)
	assert.Equal(t, "acme-outdoors-storefront", project.Slug)
	assert.Equal(t, types.PublishDraft, project.PublishStatus)
	assert.Equal(t, types.StatusPlanning, project.Status)
}

func TestProjectCreateRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	_, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront"})
	require.NoError(t, err)

	// Different punctuation, same derived slug
	_, err = f.svc.Create(ctx, CreateProjectInput{Title: "Acme -- Storefront!"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProjectCreateValidatesStatusAndClient(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	_, err := f.svc.Create(ctx, CreateProjectInput{Title: "Bad Status", Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.Create(ctx, CreateProjectInput{Title: "Bad Publish", PublishStatus: "public"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	ghost := "client-missing"
	_, err = f.svc.Create(ctx, CreateProjectInput{Title: "Ghost Client", ClientID: &ghost})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectUpdateNeverRecomputesSlug(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Original Title"})
	require.NoError(t, err)
	require.Equal(t, "original-title", project.Slug)

	newTitle := "Completely Different Title"
	updated, err := f.svc.Update(ctx, project.ID, UpdateProjectInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "original-title", updated.Slug)

	// The old slug still resolves
	found, err := f.svc.GetBySlug(ctx, "original-title")
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)
}

func TestProjectUpdatePartial(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{
		Title:       "Acme Storefront",
		Description: "original description",
		Category:    "E-Commerce",
	})
	require.NoError(t, err)

	progress := 60
	updated, err := f.svc.Update(ctx, project.ID, UpdateProjectInput{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Progress)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, "E-Commerce", updated.Category)

	bad := "archived"
	_, err = f.svc.Update(ctx, project.ID, UpdateProjectInput{PublishStatus: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.Update(ctx, "missing", UpdateProjectInput{Progress: &progress})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectUpdateStatusBroadcasts(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront"})
	require.NoError(t, err)

	err = f.svc.UpdateStatus(ctx, project.ID, types.StatusInProgress, 40, "Design", "Mockups under review")
	require.NoError(t, err)

	stored, err := f.projects.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInProgress, stored.Status)
	assert.Equal(t, 40, stored.Progress)

	require.Len(t, f.broadcaster.events, 1)
	event := f.broadcaster.events[0]
	assert.Equal(t, "project_status_changed", event.kind)
	assert.Equal(t, project.ID, event.projectID)
	assert.Equal(t, types.StatusInProgress, event.payload["status"])
	assert.Equal(t, 40, event.payload["progress"])
}

func TestProjectUpdateStatusValidation(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.UpdateStatus(ctx, project.ID, "shipped", 40, "", ""), ErrInvalidStatus)
	assert.Error(t, f.svc.UpdateStatus(ctx, project.ID, types.StatusReview, 101, "", ""))
	assert.ErrorIs(t, f.svc.UpdateStatus(ctx, "missing", types.StatusReview, 50, "", ""), ErrNotFound)
	assert.Empty(t, f.broadcaster.events)
}

func TestProjectTimelineEntryBroadcasts(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront"})
	require.NoError(t, err)

	entry, err := f.svc.AddTimelineEntry(ctx, project.ID, "Kickoff", "Discovery workshop", "")
	require.NoError(t, err)
	assert.Equal(t, types.TimelineUpdate, entry.Type)

	entries, err := f.svc.ListTimeline(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.Len(t, f.broadcaster.events, 1)
	assert.Equal(t, "timeline_entry_added", f.broadcaster.events[0].kind)

	_, err = f.svc.AddTimelineEntry(ctx, "missing", "Kickoff", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectMessaging(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront"})
	require.NoError(t, err)

	message, err := f.svc.SendMessage(ctx, project.ID, types.SenderTeam, "Arjun", "First draft is up")
	require.NoError(t, err)
	assert.Equal(t, types.SenderTeam, message.Sender)

	_, err = f.svc.SendMessage(ctx, project.ID, "bot", "Bot", "beep")
	assert.Error(t, err)

	messages, err := f.svc.ListMessages(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	require.Len(t, f.broadcaster.events, 1)
	event := f.broadcaster.events[0]
	assert.Equal(t, "project_message", event.kind)
	assert.Equal(t, "First draft is up", event.payload["content"])
}

func TestProjectDocuments(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront"})
	require.NoError(t, err)

	size := int64(2048)
	doc, err := f.svc.AddDocument(ctx, project.ID, "contract.pdf", "https://files.test/contract.pdf", &size)
	require.NoError(t, err)

	docs, err := f.svc.ListDocuments(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	require.NoError(t, f.svc.DeleteDocument(ctx, project.ID, doc.ID))
	docs, err = f.svc.ListDocuments(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestProjectGetForClientHidesOtherClientsProjects(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)
	owner := f.seedClient(t)

	project, err := f.svc.Create(ctx, CreateProjectInput{Title: "Acme Storefront", ClientID: &owner.ID})
	require.NoError(t, err)

	got, err := f.svc.GetForClient(ctx, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)

	// Someone else's project and a missing project look identical
	_, err = f.svc.GetForClient(ctx, project.ID, "client-other")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.svc.GetForClient(ctx, "missing", owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	unassigned, err := f.svc.Create(ctx, CreateProjectInput{Title: "Internal Tooling"})
	require.NoError(t, err)
	_, err = f.svc.GetForClient(ctx, unassigned.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectListForClient(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)
	owner := f.seedClient(t)

	_, err := f.svc.Create(ctx, CreateProjectInput{Title: "Storefront", ClientID: &owner.ID})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateProjectInput{Title: "Brand Refresh", ClientID: &owner.ID})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateProjectInput{Title: "Unrelated"})
	require.NoError(t, err)

	mine, err := f.svc.ListForClient(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestProjectListPublished(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture(t)

	_, err := f.svc.Create(ctx, CreateProjectInput{Title: "Public Work", PublishStatus: types.PublishPublished})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, CreateProjectInput{Title: "Hidden Work"})
	require.NoError(t, err)

	published, err := f.svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Public Work", published[0].Title)
}
