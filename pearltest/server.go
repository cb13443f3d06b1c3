// Package pearltest provides a fake NLPearl API server for tests.
//
// The server mounts every route of both API versions, records each request
// it receives and answers with canned responses that tests can override:
//
//	srv := pearltest.NewServer(pearltest.WithAPIKey("test-key"))
//	defer srv.Close()
//
//	c := client.New(client.Config{APIKey: "test-key", BaseURL: srv.URL})
//	_, err := c.Outbound.AddLead(ctx, "ob1", "+15550001111")
//
//	req, _ := srv.LastRequest()
//	fmt.Println(req.Method, req.Path) // POST /v2/Outbound/ob1/Lead
package pearltest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	nlpearl "github.com/spetersoncode/nlpearl"
	"github.com/spetersoncode/nlpearl/internal/endpoint"
)

// Request is a request recorded by the server.
type Request struct {
	// Op is the operation the route belongs to, empty for unknown routes.
	Op      string
	Version nlpearl.Version
	Method  string
	Path    string
	Params  map[string]string
	Header  http.Header
	// Body is the decoded JSON body, nil when the request had none.
	Body    map[string]any
	RawBody []byte
}

// Response is a canned answer for an operation.
type Response struct {
	Status      int
	Body        string
	ContentType string
}

// JSON returns a 200 response with the given JSON body.
func JSON(body string) Response {
	return Response{Status: http.StatusOK, Body: body, ContentType: "application/json"}
}

// Text returns a 200 response with a plain-text body.
func Text(body string) Response {
	return Response{Status: http.StatusOK, Body: body, ContentType: "text/plain"}
}

// Status returns an error response with a JSON message.
func Status(code int) Response {
	body := fmt.Sprintf(`{"message":%q}`, http.StatusText(code))
	return Response{Status: code, Body: body, ContentType: "application/json"}
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey makes the server reject requests without this bearer token.
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.apiKey = key
	}
}

// Server is a fake NLPearl API.
type Server struct {
	*httptest.Server

	apiKey string

	mu        sync.Mutex
	requests  []Request
	responses map[string]Response
}

// NewServer starts a fake server. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{responses: make(map[string]Response)}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	for _, op := range endpoint.All() {
		for _, v := range op.Versions() {
			route := op.Routes[v]
			r.Method(route.Method, "/"+string(v)+route.Path, s.handle(op.Name, v))
		}
	}
	r.NotFound(s.handle("", ""))
	r.MethodNotAllowed(s.handle("", ""))

	s.Server = httptest.NewServer(r)
	return s
}

// Respond sets the response for an operation, e.g. "Outbound.AddLead".
func (s *Server) Respond(op string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[op] = resp
}

// Requests returns all requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Reset forgets recorded requests and canned responses.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.responses = make(map[string]Response)
}

func (s *Server) handle(op string, v nlpearl.Version) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := Request{
			Op:      op,
			Version: v,
			Method:  r.Method,
			Path:    r.URL.Path,
			Params:  map[string]string{},
			Header:  r.Header.Clone(),
		}
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if key == "*" {
					continue
				}
				rec.Params[key] = rctx.URLParams.Values[i]
			}
		}
		rec.RawBody, _ = io.ReadAll(r.Body)
		if len(rec.RawBody) > 0 {
			var body map[string]any
			if err := json.Unmarshal(rec.RawBody, &body); err == nil {
				rec.Body = body
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		resp, ok := s.responses[op]
		s.mu.Unlock()

		switch {
		case op == "":
			resp = Status(http.StatusNotFound)
		case s.apiKey != "" && r.Header.Get("Authorization") != "Bearer "+s.apiKey:
			resp = Status(http.StatusUnauthorized)
		case !ok:
			resp = defaultResponse(op)
		}
		write(w, resp)
	}
}

func write(w http.ResponseWriter, resp Response) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	io.WriteString(w, resp.Body)
}

// defaultResponse returns a plausible success body for op.
func defaultResponse(op string) Response {
	switch op {
	case endpoint.AccountGet:
		return JSON(`{"name":"Test Account","creditBalance":100,"totalAgents":1,"status":1}`)
	case endpoint.OutboundAddLead:
		return JSON(fmt.Sprintf(`{"id":%q}`, uuid.NewString()))
	case endpoint.CallCreate, endpoint.OutboundMakeCall:
		return JSON(fmt.Sprintf(`{"id":%q,"status":1}`, uuid.NewString()))
	case endpoint.PearlResetCustomerMemory:
		return Text("Memory reset")
	case endpoint.PearlSetActive:
		return JSON(`1`)
	case endpoint.CallDelete, endpoint.OutboundDeleteLeads, endpoint.OutboundDeleteLeadsByExternalID:
		return JSON(`true`)
	}
	switch {
	case strings.HasSuffix(op, ".GetAll"):
		return JSON(`[]`)
	case strings.HasSuffix(op, ".GetCalls"), strings.HasSuffix(op, ".GetLeads"), strings.HasSuffix(op, ".GetCallRequests"):
		return JSON(`{"count":0,"results":[]}`)
	case strings.HasSuffix(op, ".GetOngoingCalls"):
		return JSON(`{"totalOngoingCalls":0,"totalOnQueue":0}`)
	default:
		return JSON(`{}`)
	}
}
