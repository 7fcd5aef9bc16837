package uploads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// uploadServer fakes the two-phase endpoint pair. phase2Status controls the
// PUT response.
func uploadServer(t *testing.T, phase2Status int) (*httptest.Server, *[]byte) {
	t.Helper()
	var received []byte

	mux := http.NewServeMux()
	mux.HandleFunc("/uploads/url", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":{"upload_url":"/uploads/ticket-1"}}`)
	})
	mux.HandleFunc("/uploads/ticket-1", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = body
		if phase2Status != http.StatusOK {
			w.WriteHeader(phase2Status)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":{"storage_id":"stored-1"}}`)
	})

	return httptest.NewServer(mux), &received
}

func TestUploadFileSuccess(t *testing.T) {
	srv, received := uploadServer(t, http.StatusOK)
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	payload := []byte("image bytes")

	storageID, err := client.UploadFile(context.Background(), payload, "image/png")
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
	if storageID != "stored-1" {
		t.Errorf("UploadFile() = %q, want %q", storageID, "stored-1")
	}
	if string(*received) != string(payload) {
		t.Errorf("server received %q, want %q", *received, payload)
	}
	if client.InProgress() {
		t.Error("InProgress() = true after success, want false")
	}
}

func TestUploadFileSecondPhaseFails(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "serverError", status: http.StatusInternalServerError},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := uploadServer(t, tt.status)
			defer srv.Close()

			client := NewClient(srv.URL, "token")
			storageID, err := client.UploadFile(context.Background(), []byte("x"), "image/png")
			if err == nil {
				t.Fatal("UploadFile() error = nil, want error on failed PUT")
			}
			if storageID != "" {
				t.Errorf("UploadFile() = %q, want empty storage id on failure", storageID)
			}
			if client.InProgress() {
				t.Error("InProgress() = true after failure, want false")
			}
		})
	}
}

func TestUploadFileFirstPhaseFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	if _, err := client.UploadFile(context.Background(), []byte("x"), "image/png"); err == nil {
		t.Fatal("UploadFile() error = nil, want error when url request fails")
	}
	if client.InProgress() {
		t.Error("InProgress() = true after failure, want false")
	}
}

func TestUploadFileTransportError(t *testing.T) {
	srv, _ := uploadServer(t, http.StatusOK)
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "")
	if _, err := client.UploadFile(context.Background(), []byte("x"), "image/png"); err == nil {
		t.Fatal("UploadFile() error = nil, want transport error")
	}
	if client.InProgress() {
		t.Error("InProgress() = true after transport error, want false")
	}
}
