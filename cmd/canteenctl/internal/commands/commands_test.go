package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/appetiteclub/canteen/pkg/canteen"
	"github.com/appetiteclub/canteen/pkg/enums/orderstatus"
	"github.com/appetiteclub/canteen/pkg/view"
)

// fakeBackend serves canned JSON per "METHOD /path" and records request
// bodies.
type fakeBackend struct {
	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests map[string][][]byte
}

func newFakeBackend(t *testing.T, routes map[string]http.HandlerFunc) (*canteen.Client, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{routes: routes, requests: map[string][][]byte{}}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)
	return canteen.NewClient(srv.URL), fb
}

// Requests returns the bodies received for key.
func (f *fakeBackend) Requests(key string) [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[key]
}

func decodeOnly(t *testing.T, bodies [][]byte, dest interface{}) {
	t.Helper()
	if len(bodies) != 1 {
		t.Fatalf("received %d requests, want 1", len(bodies))
	}
	if err := json.Unmarshal(bodies[0], dest); err != nil {
		t.Fatalf("cannot decode request: %v", err)
	}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	var buf bytes.Buffer
	buf.ReadFrom(r.Body)

	f.mu.Lock()
	f.requests[key] = append(f.requests[key], buf.Bytes())
	h, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestMenu(t *testing.T) {
	tests := []struct {
		name         string
		reply        http.HandlerFunc
		wantErr      bool
		wantContains []string
	}{
		{
			name:         "printsTable",
			reply:        jsonReply(http.StatusOK, `[{"item_id":1,"item_name":"Masala Dosa","category":"Breakfast","price":40.0,"avg_prep_time_minutes":8}]`),
			wantContains: []string{"ITEM", "Masala Dosa", "Breakfast", "40.0"},
		},
		{
			name:    "backendFailure",
			reply:   jsonReply(http.StatusInternalServerError, `{"error":"db down"}`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newFakeBackend(t, map[string]http.HandlerFunc{"GET /menu": tt.reply})
			var out bytes.Buffer

			err := Menu(context.Background(), api, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Menu() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestQueueAndStats(t *testing.T) {
	api, _ := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /queue-status": jsonReply(http.StatusOK, `{"snapshot_time":"12:00","pending_orders":3,"avg_wait_time_minutes":6.5}`),
		"GET /stats/today":  jsonReply(http.StatusOK, `{"order_date":"2026-10-19","total_orders":12,"avg_wait_time":"4.5"}`),
	})

	var out bytes.Buffer
	if err := Queue(context.Background(), api, &out); err != nil {
		t.Fatalf("Queue() error = %v", err)
	}
	if err := Stats(context.Background(), api, &out); err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	for _, want := range []string{
		"Pending Orders: 3",
		"Average Wait Time: 6.5 minutes",
		"Total Orders: 12",
		"Average Wait Time: 4.50 minutes",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestQueueMessageBranch(t *testing.T) {
	api, _ := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /queue-status": jsonReply(http.StatusOK, `{"message":"No pending orders","pending_orders":0}`),
	})

	var out bytes.Buffer
	if err := Queue(context.Background(), api, &out); err != nil {
		t.Fatalf("Queue() error = %v", err)
	}
	if !strings.Contains(out.String(), "  No pending orders") {
		t.Errorf("output = %q, want message line", out.String())
	}
	if strings.Contains(out.String(), "Pending Orders:") {
		t.Errorf("output = %q, should not render data branch", out.String())
	}
}

func TestOrder(t *testing.T) {
	values := map[string]string{
		view.FieldName:     "Asha",
		view.FieldRegID:    "21BCE1001",
		view.FieldItemID:   "3",
		view.FieldQuantity: "",
	}

	tests := []struct {
		name         string
		reply        http.HandlerFunc
		wantErr      bool
		wantContains []string
	}{
		{
			name:         "success",
			reply:        jsonReply(http.StatusCreated, `{"message":"Order placed","order_id":42}`),
			wantContains: []string{"✅ Order placed (Order ID: 42)", "Queue Status", "No pending orders"},
		},
		{
			name:         "rejected",
			reply:        jsonReply(http.StatusBadRequest, `{"error":"Item not available"}`),
			wantErr:      true,
			wantContains: []string{"❌ Error: Item not available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, fb := newFakeBackend(t, map[string]http.HandlerFunc{
				"POST /order":       tt.reply,
				"GET /queue-status": jsonReply(http.StatusOK, `{"message":"No pending orders"}`),
				"GET /stats/today":  jsonReply(http.StatusOK, `{"message":"No orders today"}`),
			})
			var out bytes.Buffer

			err := Order(context.Background(), api, &out, values)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Order() error = %v, wantErr %v", err, tt.wantErr)
			}

			var got canteen.OrderRequest
			decodeOnly(t, fb.Requests("POST /order"), &got)
			want := canteen.OrderRequest{Name: "Asha", RegID: "21BCE1001", ItemID: 3, Quantity: 1}
			if got != want {
				t.Errorf("request = %+v, want %+v", got, want)
			}
			for _, w := range tt.wantContains {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}

const kitchenOrdersJSON = `[{"order_id":42,"student_name":"Asha","reg_id":"21BCE1001","item_name":"Masala Dosa","quantity":2,"status":"PENDING","order_time":"Mon, 19 Oct 2026 09:30:00 GMT"}]`

func TestOrders(t *testing.T) {
	tests := []struct {
		name         string
		reply        http.HandlerFunc
		wantErr      bool
		wantContains []string
	}{
		{
			name:         "printsTable",
			reply:        jsonReply(http.StatusOK, kitchenOrdersJSON),
			wantContains: []string{"STATUS", "Asha", "PENDING"},
		},
		{
			name:         "empty",
			reply:        jsonReply(http.StatusOK, `[]`),
			wantContains: []string{view.NoPendingOrdersText},
		},
		{
			name:         "failureWithoutError",
			reply:        jsonReply(http.StatusInternalServerError, `{}`),
			wantErr:      true,
			wantContains: []string{"Error loading orders"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newFakeBackend(t, map[string]http.HandlerFunc{"GET /kitchen/orders": tt.reply})
			var out bytes.Buffer

			err := Orders(context.Background(), api, &out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Orders() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name         string
		status       string
		reply        http.HandlerFunc
		wantErr      error
		wantRequest  bool
		wantContains []string
	}{
		{
			name:         "successPrintsConfirmationAndTable",
			status:       "READY",
			reply:        jsonReply(http.StatusOK, `{"message":"Order updated"}`),
			wantRequest:  true,
			wantContains: []string{"✅ Order updated", "Masala Dosa"},
		},
		{
			name:         "failureUsesBackendError",
			status:       "READY",
			reply:        jsonReply(http.StatusNotFound, `{"error":"Order not found"}`),
			wantRequest:  true,
			wantContains: []string{"❌ Order not found"},
		},
		{
			name:    "unknownStatus",
			status:  "BURNT",
			wantErr: orderstatus.ErrUnknownStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, fb := newFakeBackend(t, map[string]http.HandlerFunc{
				"GET /kitchen/orders":  jsonReply(http.StatusOK, kitchenOrdersJSON),
				"POST /kitchen/update": tt.reply,
			})
			var out bytes.Buffer

			err := Update(context.Background(), api, &out, 42, tt.status)
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
			bodies := fb.Requests("POST /kitchen/update")
			if !tt.wantRequest {
				if len(bodies) != 0 {
					t.Fatalf("backend received %d updates, want none", len(bodies))
				}
			} else {
				var got canteen.StatusUpdateRequest
				decodeOnly(t, bodies, &got)
				if got.OrderID != 42 || got.Status.Code() != tt.status {
					t.Errorf("request = %+v, want order 42 %s", got, tt.status)
				}
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}
