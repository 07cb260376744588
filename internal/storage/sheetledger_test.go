package storage_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"city-explorer/internal/domain"
	"city-explorer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSheetServer(t *testing.T, csvBody string) (*httptest.Server, *[][]string) {
	t.Helper()
	var appended [][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "text/csv")
			io.WriteString(w, csvBody)
		case http.MethodPost:
			var payload struct {
				Values [][]string `json:"values"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			appended = append(appended, payload.Values...)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(server.Close)
	return server, &appended
}

func TestSheetLedger_ReadAndNextUserID(t *testing.T) {
	server, _ := newSheetServer(t, "user_id,place_id,place_ratings\n1,101,4.5\n2,102,3.0\n")
	ledger := storage.NewSheetLedger(server.URL, nil)

	records, err := ledger.ListRatings()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.RatingRecord{UserID: 2, PlaceID: 102, Rating: 3.0}, records[1])

	id, err := ledger.NextUserID()
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestSheetLedger_EmptySheetWithHeaderStartsAtOne(t *testing.T) {
	server, _ := newSheetServer(t, "user_id,place_id,place_ratings\n")
	ledger := storage.NewSheetLedger(server.URL, nil)

	id, err := ledger.NextUserID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestSheetLedger_Append(t *testing.T) {
	server, appended := newSheetServer(t, "user_id,place_id,place_ratings\n")
	ledger := storage.NewSheetLedger(server.URL, nil)

	err := ledger.Append([]domain.RatingRecord{
		{UserID: 1, PlaceID: 101, Rating: 4.5},
		{UserID: 1, PlaceID: 102, Rating: 3.0},
	})
	require.NoError(t, err)

	require.Len(t, *appended, 2)
	assert.Equal(t, []string{"1", "101", "4.5"}, (*appended)[0])
	assert.Equal(t, []string{"1", "102", "3.0"}, (*appended)[1])
}

func TestSheetLedger_HeaderMismatchRejectsSubmission(t *testing.T) {
	server, appended := newSheetServer(t, "userid,place,score\n1,101,4.5\n")
	ledger := storage.NewSheetLedger(server.URL, nil)

	err := ledger.Append([]domain.RatingRecord{{UserID: 1, PlaceID: 101, Rating: 4.5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
	assert.Empty(t, *appended)

	_, err = ledger.NextUserID()
	assert.Error(t, err)
}

func TestSheetLedger_Unreachable(t *testing.T) {
	server, _ := newSheetServer(t, "user_id,place_id,place_ratings\n")
	url := server.URL
	server.Close()

	ledger := storage.NewSheetLedger(url, nil)

	_, err := ledger.ListRatings()
	assert.Error(t, err)

	err = ledger.Append([]domain.RatingRecord{{UserID: 1, PlaceID: 101, Rating: 4.5}})
	assert.Error(t, err)
}

func TestSheetLedger_AppendRejectedByRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			io.WriteString(w, "user_id,place_id,place_ratings\n")
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	ledger := storage.NewSheetLedger(server.URL, nil)
	err := ledger.Append([]domain.RatingRecord{{UserID: 1, PlaceID: 101, Rating: 4.5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
