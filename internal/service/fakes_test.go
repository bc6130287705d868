package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. They mimic the two behaviors the services
// depend on: reads return (nil, nil) on absence, and unique violations
// surface as pgconn errors with code 23505.

var uniqueViolation = &pgconn.PgError{Code: "23505"}

type idSeq int

func (s *idSeq) next(prefix string) string {
	*s++
	return fmt.Sprintf("%s-%d", prefix, int(*s))
}

// ============================================
// Accounts
// ============================================

type fakeAccountRepo struct {
	seq      idSeq
	accounts map[string]*repository.Account
	tokens   map[string]*repository.RefreshToken
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*repository.Account),
		tokens:   make(map[string]*repository.RefreshToken),
	}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *repository.Account) error {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return uniqueViolation
		}
	}
	account.ID = r.seq.next("acct")
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id string) (*repository.Account, error) {
	return r.accounts[id], nil
}

func (r *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*repository.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	a, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	a.IsAdmin = isAdmin
	return nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *repository.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) CreateRefreshToken(ctx context.Context, token *repository.RefreshToken) error {
	token.ID = r.seq.next("rt")
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeAccountRepo) FindRefreshToken(ctx context.Context, token string) (*repository.RefreshToken, error) {
	return r.tokens[token], nil
}

func (r *fakeAccountRepo) DeleteRefreshToken(ctx context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeAccountRepo) DeleteRefreshTokensForAccount(ctx context.Context, accountID string) error {
	for t, rt := range r.tokens {
		if rt.AccountID == accountID {
			delete(r.tokens, t)
		}
	}
	return nil
}

func (r *fakeAccountRepo) tokenCountFor(accountID string) int {
	n := 0
	for _, rt := range r.tokens {
		if rt.AccountID == accountID {
			n++
		}
	}
	return n
}

// ============================================
// Clients
// ============================================

type fakeClientRepo struct {
	seq     idSeq
	clients map[string]*repository.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*repository.Client)}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *repository.Client) error {
	client.ID = r.seq.next("client")
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id string) (*repository.Client, error) {
	return r.clients[id], nil
}

func (r *fakeClientRepo) FindAll(ctx context.Context) ([]*repository.Client, error) {
	out := make([]*repository.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *repository.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) AppendNote(ctx context.Context, clientID string, note repository.ClientNote) error {
	c, ok := r.clients[clientID]
	if !ok {
		return pgx.ErrNoRows
	}
	c.Notes = append(c.Notes, note)
	return nil
}

func (r *fakeClientRepo) AppendActivity(ctx context.Context, clientID string, activity repository.ClientActivity) error {
	c, ok := r.clients[clientID]
	if !ok {
		return pgx.ErrNoRows
	}
	c.Activities = append(c.Activities, activity)
	return nil
}

func seedClientProfile(t *testing.T, repo *fakeClientRepo) *repository.Client {
	t.Helper()
	client := &repository.Client{Name: "Dana Whitfield", Email: "dana@acme.test"}
	require.NoError(t, repo.Create(context.Background(), client))
	return client
}

// ============================================
// Projects
// ============================================

type fakeProjectRepo struct {
	seq           idSeq
	projects      map[string]*repository.Project
	statusChanges map[string][]repository.StatusChange
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects:      make(map[string]*repository.Project),
		statusChanges: make(map[string][]repository.StatusChange),
	}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *repository.Project) error {
	for _, p := range r.projects {
		if p.Slug == project.Slug {
			return uniqueViolation
		}
	}
	project.ID = r.seq.next("proj")
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(ctx context.Context, id string) (*repository.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) FindBySlug(ctx context.Context, slug string) (*repository.Project, error) {
	for _, p := range r.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindAll(ctx context.Context) ([]*repository.Project, error) {
	out := make([]*repository.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) FindPublished(ctx context.Context) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range r.projects {
		if p.PublishStatus == "published" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindByClientID(ctx context.Context, clientID string) ([]*repository.Project, error) {
	var out []*repository.Project
	for _, p := range r.projects {
		if p.ClientID != nil && *p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.projects))
	for id := range r.projects {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *repository.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) UpdateStatus(ctx context.Context, projectID string, change repository.StatusChange) error {
	p, ok := r.projects[projectID]
	if !ok {
		return pgx.ErrNoRows
	}
	p.Status = change.Status
	p.Progress = change.Progress
	p.CurrentPhase = &change.CurrentPhase
	p.PhaseDescription = &change.PhaseDescription
	r.statusChanges[projectID] = append(r.statusChanges[projectID], change)
	return nil
}

func (r *fakeProjectRepo) TouchLastActivity(ctx context.Context, projectID string) error {
	p, ok := r.projects[projectID]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	p.LastActivity = &now
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	delete(r.projects, id)
	return nil
}

// ============================================
// Timeline / Messages / Documents
// ============================================

type fakeTimelineRepo struct {
	seq     idSeq
	entries map[string][]*repository.TimelineEntry
}

func newFakeTimelineRepo() *fakeTimelineRepo {
	return &fakeTimelineRepo{entries: make(map[string][]*repository.TimelineEntry)}
}

func (r *fakeTimelineRepo) Append(ctx context.Context, entry *repository.TimelineEntry) error {
	entry.ID = r.seq.next("tl")
	entry.Date = time.Now()
	r.entries[entry.ProjectID] = append(r.entries[entry.ProjectID], entry)
	return nil
}

func (r *fakeTimelineRepo) FindByProject(ctx context.Context, projectID string) ([]*repository.TimelineEntry, error) {
	return r.entries[projectID], nil
}

type fakeMessageRepo struct {
	seq      idSeq
	messages map[string][]*repository.ProjectMessage
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[string][]*repository.ProjectMessage)}
}

func (r *fakeMessageRepo) Append(ctx context.Context, message *repository.ProjectMessage) error {
	message.ID = r.seq.next("msg")
	message.Timestamp = time.Now()
	r.messages[message.ProjectID] = append(r.messages[message.ProjectID], message)
	return nil
}

func (r *fakeMessageRepo) FindByProject(ctx context.Context, projectID string) ([]*repository.ProjectMessage, error) {
	return r.messages[projectID], nil
}

type fakeDocumentRepo struct {
	seq  idSeq
	docs map[string]*repository.ProjectDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*repository.ProjectDocument)}
}

func (r *fakeDocumentRepo) Add(ctx context.Context, doc *repository.ProjectDocument) error {
	doc.ID = r.seq.next("doc")
	doc.UploadedAt = time.Now()
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) FindByProject(ctx context.Context, projectID string) ([]*repository.ProjectDocument, error) {
	var out []*repository.ProjectDocument
	for _, d := range r.docs {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

// ============================================
// Service catalog
// ============================================

type fakeServiceRepo struct {
	seq      idSeq
	services map[string]*repository.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*repository.Service)}
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *repository.Service) error {
	for _, s := range r.services {
		if s.Slug == service.Slug {
			return uniqueViolation
		}
	}
	service.ID = r.seq.next("svc")
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) FindByID(ctx context.Context, id string) (*repository.Service, error) {
	return r.services[id], nil
}

func (r *fakeServiceRepo) FindBySlug(ctx context.Context, slug string) (*repository.Service, error) {
	for _, s := range r.services {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) FindAll(ctx context.Context) ([]*repository.Service, error) {
	out := make([]*repository.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *repository.Service) error {
	if _, ok := r.services[service.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	delete(r.services, id)
	return nil
}

// ============================================
// Team
// ============================================

type fakeTeamRepo struct {
	seq     idSeq
	members map[string]*repository.TeamMember
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{members: make(map[string]*repository.TeamMember)}
}

func (r *fakeTeamRepo) Create(ctx context.Context, member *repository.TeamMember) error {
	member.ID = r.seq.next("team")
	member.CreatedAt = time.Now()
	member.UpdatedAt = member.CreatedAt
	r.members[member.ID] = member
	return nil
}

func (r *fakeTeamRepo) FindByID(ctx context.Context, id string) (*repository.TeamMember, error) {
	return r.members[id], nil
}

func (r *fakeTeamRepo) FindAll(ctx context.Context) ([]*repository.TeamMember, error) {
	out := make([]*repository.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(ctx context.Context, member *repository.TeamMember) error {
	if _, ok := r.members[member.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.members[member.ID] = member
	return nil
}

func (r *fakeTeamRepo) Delete(ctx context.Context, id string) error {
	delete(r.members, id)
	return nil
}

// ============================================
// Inquiries
// ============================================

type fakeInquiryRepo struct {
	seq       idSeq
	inquiries map[string]*repository.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[string]*repository.Inquiry)}
}

func (r *fakeInquiryRepo) Create(ctx context.Context, inquiry *repository.Inquiry) error {
	inquiry.ID = r.seq.next("inq")
	inquiry.Status = "pending"
	inquiry.CreatedAt = time.Now()
	inquiry.UpdatedAt = inquiry.CreatedAt
	r.inquiries[inquiry.ID] = inquiry
	return nil
}

func (r *fakeInquiryRepo) FindByID(ctx context.Context, id string) (*repository.Inquiry, error) {
	return r.inquiries[id], nil
}

func (r *fakeInquiryRepo) FindAll(ctx context.Context) ([]*repository.Inquiry, error) {
	out := make([]*repository.Inquiry, 0, len(r.inquiries))
	for _, i := range r.inquiries {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeInquiryRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, i := range r.inquiries {
		if i.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeInquiryRepo) UpdateStatus(ctx context.Context, id, status string, response *string) error {
	i, ok := r.inquiries[id]
	if !ok {
		return pgx.ErrNoRows
	}
	i.Status = status
	i.Response = response
	return nil
}

func (r *fakeInquiryRepo) Delete(ctx context.Context, id string) error {
	delete(r.inquiries, id)
	return nil
}

// ============================================
// Settings
// ============================================

type fakeSettingsRepo struct {
	settings *repository.SiteSettings
	hero     *repository.HeroContent
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*repository.SiteSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Put(ctx context.Context, settings *repository.SiteSettings) error {
	r.settings = settings
	return nil
}

func (r *fakeSettingsRepo) GetHero(ctx context.Context) (*repository.HeroContent, error) {
	return r.hero, nil
}

func (r *fakeSettingsRepo) PutHero(ctx context.Context, hero *repository.HeroContent) error {
	r.hero = hero
	return nil
}

// ============================================
// Payments
// ============================================

type fakePaymentRepo struct {
	seq      idSeq
	payments []*repository.Payment
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *repository.Payment) error {
	payment.ID = r.seq.next("pay")
	payment.Status = "completed"
	payment.CreatedAt = time.Now()
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindAll(ctx context.Context) ([]*repository.Payment, error) {
	return r.payments, nil
}

func (r *fakePaymentRepo) FindByClientID(ctx context.Context, clientID string) ([]*repository.Payment, error) {
	var out []*repository.Payment
	for _, p := range r.payments {
		if p.ClientID != nil && *p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range r.payments {
		sum = sum.Add(p.Amount)
	}
	return sum, nil
}

// ============================================
// Collaborators
// ============================================

type broadcastEvent struct {
	kind      string
	projectID string
	payload   map[string]interface{}
}

type fakeBroadcaster struct {
	events []broadcastEvent
}

func (b *fakeBroadcaster) BroadcastProjectStatus(projectID string, payload map[string]interface{}) {
	b.events = append(b.events, broadcastEvent{"project_status_changed", projectID, payload})
}

func (b *fakeBroadcaster) BroadcastProjectMessage(projectID string, payload map[string]interface{}) {
	b.events = append(b.events, broadcastEvent{"project_message", projectID, payload})
}

func (b *fakeBroadcaster) BroadcastTimelineEntry(projectID string, payload map[string]interface{}) {
	b.events = append(b.events, broadcastEvent{"timeline_entry_added", projectID, payload})
}

type sentMail struct {
	kind    string
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) SendNewInquiryAlert(to, inquirerName, subject, message string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{"new_inquiry", to, subject, message})
	return nil
}

func (m *fakeMailer) SendInquiryResponse(to, inquirerName, subject, response string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{"inquiry_response", to, subject, response})
	return nil
}
