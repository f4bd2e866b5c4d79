package fetcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orbitalview/wallpaper/internal/config"
	"github.com/orbitalview/wallpaper/internal/domain"
	"github.com/orbitalview/wallpaper/internal/fetcher/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testConfig() *config.AppConfig {
	cfg := config.Defaults()
	cfg.MaxImageBytes = 1024
	return &cfg
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name          string
		contentType   []string
		responseBody  []byte
		statusCode    int
		ctxFunc       func() (context.Context, context.CancelFunc)
		expectedKind  domain.Kind
		expectedError string
		expectedType  string
	}{
		{
			name:         "Success - Valid Image",
			contentType:  []string{"image/jpeg"},
			responseBody: []byte("fake-image-data"),
			statusCode:   http.StatusOK,
			expectedType: "image/jpeg",
		},
		{
			name:         "Success - Upper Case Media Type",
			contentType:  []string{"IMAGE/PNG"},
			responseBody: []byte("fake-image-data"),
			statusCode:   http.StatusOK,
			expectedType: "image/png",
		},
		{
			name:         "Success - Non-200 2xx Status",
			contentType:  []string{"image/gif"},
			responseBody: []byte("gif"),
			statusCode:   http.StatusNonAuthoritativeInfo,
			expectedType: "image/gif",
		},
		{
			name:          "Error - 404 Not Found",
			contentType:   []string{"image/jpeg"},
			statusCode:    http.StatusNotFound,
			expectedKind:  domain.KindRemoteError,
			expectedError: "404 Not Found",
		},
		{
			name:          "Error - Invalid Content Type",
			contentType:   []string{"text/html; charset=utf-8"},
			responseBody:  []byte("<html></html>"),
			statusCode:    http.StatusOK,
			expectedKind:  domain.KindNotAnImage,
			expectedError: "text/html; charset=utf-8",
		},
		{
			name:          "Error - Missing Content Type",
			contentType:   nil,
			responseBody:  []byte{0xFF, 0xD8, 0xFF},
			statusCode:    http.StatusOK,
			expectedKind:  domain.KindProtocolViolation,
			expectedError: "did not provide a Content-Type",
		},
		{
			name:          "Error - Response Too Large",
			contentType:   []string{"image/png"},
			responseBody:  []byte(strings.Repeat("a", 2048)),
			statusCode:    http.StatusOK,
			expectedKind:  domain.KindTransferError,
			expectedError: "exceeds 1024 bytes",
		},
		{
			name: "Error - Context Cancelled",
			ctxFunc: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel() // Cancel immediately
				return ctx, cancel
			},
			statusCode:    http.StatusOK,
			expectedKind:  domain.KindTransferError,
			expectedError: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mock server
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// A nil slice suppresses net/http's automatic content sniffing
				w.Header()["Content-Type"] = tt.contentType
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.responseBody)
			}))
			defer server.Close()

			var ctx context.Context
			var cancel context.CancelFunc
			if tt.ctxFunc != nil {
				ctx, cancel = tt.ctxFunc()
			} else {
				ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
			}
			defer cancel()

			fetcher := NewHTTPFetcher(zap.NewNop(), testConfig())
			result, err := fetcher.Fetch(ctx, server.URL)

			if tt.expectedKind != "" {
				if err == nil {
					t.Fatalf("expected %s error, got nil", tt.expectedKind)
				}
				if got := domain.KindOf(err); got != tt.expectedKind {
					t.Errorf("expected kind %s, got %s (%v)", tt.expectedKind, got, err)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				if result != nil {
					t.Error("expected no result on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(result.Bytes, tt.responseBody) {
				t.Errorf("expected body %q, got %q", tt.responseBody, result.Bytes)
			}
			if result.MediaType != tt.expectedType {
				t.Errorf("expected media type %q, got %q", tt.expectedType, result.MediaType)
			}
		})
	}
}

func TestHTTPFetcher_BlankURLMakesNoRequest(t *testing.T) {
	for _, url := range []string{"", "   ", "\t\n"} {
		ctrl := gomock.NewController(t)
		transport := mocks.NewMockRoundTripper(ctrl)
		transport.EXPECT().RoundTrip(gomock.Any()).Times(0)

		fetcher := NewHTTPFetcherWithClient(zap.NewNop(), testConfig(), &http.Client{Transport: transport})
		_, err := fetcher.Fetch(context.Background(), url)

		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Errorf("url %q: expected InvalidInput, got %v", url, err)
		}
		ctrl.Finish()
	}
}

func TestHTTPFetcher_TransportResponses(t *testing.T) {
	tests := []struct {
		name         string
		header       http.Header
		body         io.ReadCloser
		transportErr error
		expectedKind domain.Kind
	}{
		{
			name:         "Header Not Decodable As Text",
			header:       http.Header{"Content-Type": []string{"image/jp\xffeg"}},
			body:         io.NopCloser(strings.NewReader("data")),
			expectedKind: domain.KindProtocolViolation,
		},
		{
			name:         "Control Character In Header",
			header:       http.Header{"Content-Type": []string{"image/\x01png"}},
			body:         io.NopCloser(strings.NewReader("data")),
			expectedKind: domain.KindProtocolViolation,
		},
		{
			name:         "Body Read Failure",
			header:       http.Header{"Content-Type": []string{"image/png"}},
			body:         io.NopCloser(&failingReader{}),
			expectedKind: domain.KindTransferError,
		},
		{
			name:         "Connection Refused",
			transportErr: errors.New("connection refused"),
			expectedKind: domain.KindTransferError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transport := mocks.NewMockRoundTripper(ctrl)
			transport.EXPECT().RoundTrip(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				if tt.transportErr != nil {
					return nil, tt.transportErr
				}
				return &http.Response{
					StatusCode: http.StatusOK,
					Status:     "200 OK",
					Header:     tt.header,
					Body:       tt.body,
					Request:    req,
				}, nil
			})

			fetcher := NewHTTPFetcherWithClient(zap.NewNop(), testConfig(), &http.Client{Transport: transport})
			_, err := fetcher.Fetch(context.Background(), "http://example.invalid/earth.jpg")

			if got := domain.KindOf(err); got != tt.expectedKind {
				t.Errorf("expected kind %s, got %s (%v)", tt.expectedKind, got, err)
			}
		})
	}
}

func TestHTTPFetcher_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png"))
	}))
	defer server.Close()

	cfg := testConfig()
	fetcher := NewHTTPFetcher(zap.NewNop(), cfg)
	if _, err := fetcher.Fetch(context.Background(), "  "+server.URL+"  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAgent != cfg.UserAgent {
		t.Errorf("expected User-Agent %q, got %q", cfg.UserAgent, gotAgent)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}
