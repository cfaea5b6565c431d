package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"fleetcheck/config"
	"fleetcheck/internal/domain/entity"
	"fleetcheck/internal/domain/repository"
	"fleetcheck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    4,
			VerifyBaseURL: "https://fleetcheck.test/verify",
		},
	}
	cfg.SecretKey.Signing = "unit-test-signing-key"

	return cfg
}

// --- In-memory repository fakes ---

type fakeAccountRepo struct {
	accounts map[string]*entity.Account

	createErr error
	updateErr error
	findErr   error
}

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
	for _, account := range accounts {
		repo.accounts[account.Email] = account
	}

	return repo
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, account := range f.accounts {
		if account.ID == id {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (f *fakeAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	accounts := make([]*entity.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		copied := *account
		accounts = append(accounts, &copied)
	}

	return accounts, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.accounts[account.Email]; ok {
		return errors.New("duplicate email")
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	copied := *account
	f.accounts[account.Email] = &copied

	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	copied := *account
	f.accounts[account.Email] = &copied

	return nil
}

type fakeConsumedTokenRepo struct {
	consumed map[string]*entity.ConsumedToken

	consumeErr error
}

func newFakeConsumedTokenRepo() *fakeConsumedTokenRepo {
	return &fakeConsumedTokenRepo{consumed: make(map[string]*entity.ConsumedToken)}
}

func (f *fakeConsumedTokenRepo) Consume(_ context.Context, token *entity.ConsumedToken) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}
	if _, ok := f.consumed[token.TokenID]; ok {
		return repository.ErrTokenConsumed
	}
	f.consumed[token.TokenID] = token

	return nil
}

func (f *fakeConsumedTokenRepo) DeleteExpired(_ context.Context) error {
	return nil
}

type fakeRiderRepo struct {
	riders map[int64]*entity.Rider
	nextID int64
}

func newFakeRiderRepo(riders ...*entity.Rider) *fakeRiderRepo {
	repo := &fakeRiderRepo{riders: make(map[int64]*entity.Rider), nextID: 1}
	for _, rider := range riders {
		repo.riders[rider.ID] = rider
		if rider.ID >= repo.nextID {
			repo.nextID = rider.ID + 1
		}
	}

	return repo
}

func (f *fakeRiderRepo) FindByID(_ context.Context, id int64) (*entity.Rider, error) {
	rider, ok := f.riders[id]
	if !ok {
		return nil, repository.ErrRiderNotFound
	}
	copied := *rider

	return &copied, nil
}

func (f *fakeRiderRepo) FindByIDNumber(_ context.Context, idNumber string) (*entity.Rider, error) {
	for _, rider := range f.riders {
		if rider.IDNumber == idNumber {
			copied := *rider

			return &copied, nil
		}
	}

	return nil, repository.ErrRiderNotFound
}

func (f *fakeRiderRepo) List(_ context.Context) ([]*entity.Rider, error) {
	riders := make([]*entity.Rider, 0, len(f.riders))
	for _, rider := range f.riders {
		copied := *rider
		riders = append(riders, &copied)
	}

	return riders, nil
}

func (f *fakeRiderRepo) Create(_ context.Context, rider *entity.Rider) error {
	rider.ID = f.nextID
	f.nextID++
	copied := *rider
	f.riders[rider.ID] = &copied

	return nil
}

func (f *fakeRiderRepo) Update(_ context.Context, rider *entity.Rider) error {
	if _, ok := f.riders[rider.ID]; !ok {
		return repository.ErrRiderNotFound
	}
	copied := *rider
	f.riders[rider.ID] = &copied

	return nil
}

func (f *fakeRiderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.riders[id]; !ok {
		return repository.ErrRiderNotFound
	}
	delete(f.riders, id)

	return nil
}

type fakeInspectionRepo struct {
	inspections map[int64]*entity.Inspection
	nextID      int64
}

func newFakeInspectionRepo(inspections ...*entity.Inspection) *fakeInspectionRepo {
	repo := &fakeInspectionRepo{inspections: make(map[int64]*entity.Inspection), nextID: 1}
	for _, inspection := range inspections {
		repo.inspections[inspection.ID] = inspection
		if inspection.ID >= repo.nextID {
			repo.nextID = inspection.ID + 1
		}
	}

	return repo
}

func (f *fakeInspectionRepo) FindByID(_ context.Context, id int64) (*entity.Inspection, error) {
	inspection, ok := f.inspections[id]
	if !ok {
		return nil, repository.ErrInspectionNotFound
	}
	copied := *inspection

	return &copied, nil
}

func (f *fakeInspectionRepo) List(_ context.Context, filter repository.InspectionFilter) ([]*entity.Inspection, error) {
	inspections := make([]*entity.Inspection, 0, len(f.inspections))
	for _, inspection := range f.inspections {
		if filter.City != "" && inspection.City != filter.City {
			continue
		}
		if filter.Location != "" && inspection.Location != filter.Location {
			continue
		}
		copied := *inspection
		inspections = append(inspections, &copied)
	}

	return inspections, nil
}

func (f *fakeInspectionRepo) Create(_ context.Context, inspection *entity.Inspection) error {
	inspection.ID = f.nextID
	f.nextID++
	copied := *inspection
	f.inspections[inspection.ID] = &copied

	return nil
}

func (f *fakeInspectionRepo) Update(_ context.Context, inspection *entity.Inspection) error {
	if _, ok := f.inspections[inspection.ID]; !ok {
		return repository.ErrInspectionNotFound
	}
	copied := *inspection
	f.inspections[inspection.ID] = &copied

	return nil
}

func (f *fakeInspectionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.inspections[id]; !ok {
		return repository.ErrInspectionNotFound
	}
	delete(f.inspections, id)

	return nil
}

// fakeTxManager runs the callback against the same fakes, without any real
// transaction semantics.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

type fakeRepoFactory struct {
	accountRepo       *fakeAccountRepo
	consumedTokenRepo *fakeConsumedTokenRepo
	riderRepo         *fakeRiderRepo
	inspectionRepo    *fakeInspectionRepo
}

func newFakeTxManager(factory *fakeRepoFactory) *fakeTxManager {
	return &fakeTxManager{factory: factory}
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

func (f *fakeRepoFactory) ConsumedTokenRepo() repository.ConsumedTokenRepository {
	return f.consumedTokenRepo
}

func (f *fakeRepoFactory) RiderRepo() repository.RiderRepository {
	return f.riderRepo
}

func (f *fakeRepoFactory) InspectionRepo() repository.InspectionRepository {
	return f.inspectionRepo
}

// --- Service fakes ---

// fakeHasher marks hashes with a prefix instead of running bcrypt, keeping the
// tests fast and the plaintext recoverable for assertions.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeMailSender records every send and can simulate delivery failure.
type fakeMailSender struct {
	sendErr    error
	recipients []string
	subjects   []string
	bodies     []string
}

func (m *fakeMailSender) Send(_ context.Context, recipient, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.recipients = append(m.recipients, recipient)
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, htmlBody)

	return nil
}

func (m *fakeMailSender) lastBodyContains(needle string) bool {
	if len(m.bodies) == 0 {
		return false
	}

	return strings.Contains(m.bodies[len(m.bodies)-1], needle)
}

var _ service.MailSender = (*fakeMailSender)(nil)
var _ service.PasswordHasher = (*fakeHasher)(nil)
var _ repository.TransactionManager = (*fakeTxManager)(nil)
var _ repository.RepositoryFactory = (*fakeRepoFactory)(nil)
var _ repository.AccountRepository = (*fakeAccountRepo)(nil)
var _ repository.ConsumedTokenRepository = (*fakeConsumedTokenRepo)(nil)
var _ repository.RiderRepository = (*fakeRiderRepo)(nil)
var _ repository.InspectionRepository = (*fakeInspectionRepo)(nil)
