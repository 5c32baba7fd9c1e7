package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dentist-backend/internal/domain/accounts"
	"dentist-backend/internal/domain/booking"
)

// fakePostgREST captura la última request y responde lo que se le configure.
type fakePostgREST struct {
	status int
	body   string

	lastMethod string
	lastPath   string
	lastQuery  map[string]string
	lastHeader http.Header
	lastBody   []byte
}

func (f *fakePostgREST) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.lastMethod = r.Method
		f.lastPath = r.URL.Path
		f.lastQuery = map[string]string{}
		for k := range r.URL.Query() {
			f.lastQuery[k] = r.URL.Query().Get(k)
		}
		f.lastHeader = r.Header.Clone()
		f.lastBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}
}

func newFakeClient(t *testing.T, f *fakePostgREST) *Client {
	t.Helper()
	ts := httptest.NewServer(f.handler())
	t.Cleanup(ts.Close)

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "test-key", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresURLAndKey(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "", APIKey: "k"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{BaseURL: "https://x.supabase.co", APIKey: "  "})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAccountsRepo_Create_SendsPostgRESTInsert(t *testing.T) {
	f := &fakePostgREST{status: http.StatusCreated, body: `[{"id":"u1","email":"jane@x.com"}]`}
	repo := NewAccountsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), accounts.Account{
		ID:           "u1",
		FullName:     "Jane Doe",
		Email:        "jane@x.com",
		PhoneNumber:  "9876543210",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, f.lastMethod)
	assert.Equal(t, "/rest/v1/accounts", f.lastPath)
	assert.Equal(t, "test-key", f.lastHeader.Get("apikey"))
	assert.Equal(t, "Bearer test-key", f.lastHeader.Get("Authorization"))
	assert.Equal(t, "return=representation", f.lastHeader.Get("Prefer"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(f.lastBody, &sent))
	assert.Equal(t, "jane@x.com", sent["email"])
	assert.Nil(t, sent["age"])
}

func TestAccountsRepo_Create_ConflictMapsToEmailTaken(t *testing.T) {
	f := &fakePostgREST{
		status: http.StatusConflict,
		body:   `{"code":"23505","message":"duplicate key value violates unique constraint"}`,
	}
	repo := NewAccountsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), accounts.Account{ID: "u1", Email: "jane@x.com"})
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)
}

func TestAccountsRepo_Create_UniqueCodeInBodyWithOddStatus(t *testing.T) {
	// algunos despliegues responden 400 pero el code 23505 viene en el cuerpo
	f := &fakePostgREST{
		status: http.StatusBadRequest,
		body:   `{"code":"23505","message":"duplicate key"}`,
	}
	repo := NewAccountsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), accounts.Account{ID: "u1", Email: "jane@x.com"})
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)
}

func TestAccountsRepo_Create_EmptyRepresentation(t *testing.T) {
	f := &fakePostgREST{status: http.StatusCreated, body: `[]`}
	repo := NewAccountsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), accounts.Account{ID: "u1", Email: "jane@x.com"})
	assert.ErrorIs(t, err, accounts.ErrNotPersisted)
}

func TestAccountsRepo_GetByEmail(t *testing.T) {
	f := &fakePostgREST{
		status: http.StatusOK,
		body:   `[{"id":"u1","full_name":"Jane Doe","email":"jane@x.com","phone_number":"9876543210","age":34,"password_hash":"$2a$10$hash","created_at":"2026-03-01T10:00:00Z"}]`,
	}
	repo := NewAccountsRepo(newFakeClient(t, f))

	a, err := repo.GetByEmail(context.Background(), "  JANE@X.com ")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, f.lastMethod)
	assert.Equal(t, "/rest/v1/accounts", f.lastPath)
	assert.Equal(t, "*", f.lastQuery["select"])
	// el filtro viaja ya normalizado a minúsculas
	assert.Equal(t, "eq.jane@x.com", f.lastQuery["email"])

	assert.Equal(t, "u1", a.ID)
	require.NotNil(t, a.Age)
	assert.Equal(t, 34, *a.Age)
}

func TestAccountsRepo_GetByEmail_NotFound(t *testing.T) {
	f := &fakePostgREST{status: http.StatusOK, body: `[]`}
	repo := NewAccountsRepo(newFakeClient(t, f))

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestAppointmentsRepo_Create(t *testing.T) {
	f := &fakePostgREST{status: http.StatusCreated, body: `[{"id":"a1"}]`}
	repo := NewAppointmentsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), booking.Appointment{
		ID:            "a1",
		FullName:      "Jane Doe",
		PhoneNumber:   "9876543210",
		Email:         "jane@x.com",
		Date:          "2026-03-10",
		Time:          "10:00",
		Service:       "Cleaning",
		GoogleEventID: "evt-123",
		Status:        booking.StatusConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/appointments", f.lastPath)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(f.lastBody, &sent))
	assert.Equal(t, "2026-03-10", sent["appointment_date"])
	assert.Equal(t, "10:00", sent["appointment_time"])
	assert.Equal(t, "confirmed", sent["status"])
	assert.Equal(t, "evt-123", sent["google_event_id"])
}

func TestAppointmentsRepo_Create_NullEventID(t *testing.T) {
	f := &fakePostgREST{status: http.StatusCreated, body: `[{"id":"a1"}]`}
	repo := NewAppointmentsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), booking.Appointment{
		ID: "a1", Date: "2026-03-10", Time: "10:00", Status: booking.StatusPending,
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(f.lastBody, &sent))
	assert.Nil(t, sent["google_event_id"])
	assert.Equal(t, "pending", sent["status"])
}

func TestAppointmentsRepo_Create_ConflictMapsToSlotConflict(t *testing.T) {
	f := &fakePostgREST{
		status: http.StatusConflict,
		body:   `{"code":"23505","message":"duplicate key value violates unique constraint \"appointments_active_slot_unique\""}`,
	}
	repo := NewAppointmentsRepo(newFakeClient(t, f))

	err := repo.Create(context.Background(), booking.Appointment{ID: "a1", Date: "2026-03-10", Time: "10:00"})
	assert.ErrorIs(t, err, booking.ErrSlotConflict)
}

func TestAppointmentsRepo_ListActiveBySlot(t *testing.T) {
	f := &fakePostgREST{
		status: http.StatusOK,
		body:   `[{"id":"a1","appointment_date":"2026-03-10","appointment_time":"10:00","status":"confirmed","google_event_id":"evt-1","created_at":"2026-03-01T10:00:00Z"}]`,
	}
	repo := NewAppointmentsRepo(newFakeClient(t, f))

	got, err := repo.ListActiveBySlot(context.Background(), "2026-03-10", "10:00")
	require.NoError(t, err)

	// los filtros excluyen canceladas del lado del store
	assert.Equal(t, "eq.2026-03-10", f.lastQuery["appointment_date"])
	assert.Equal(t, "eq.10:00", f.lastQuery["appointment_time"])
	assert.Equal(t, "neq.cancelled", f.lastQuery["status"])

	require.Len(t, got, 1)
	assert.Equal(t, booking.StatusConfirmed, got[0].Status)
	assert.Equal(t, "evt-1", got[0].GoogleEventID)
}
