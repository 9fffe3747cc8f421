package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
)

// fakeClient answers by "METHOD path" and records every request.
type fakeClient struct {
	mu        sync.Mutex
	responses map[string]any
	errs      map[string]error
	requests  []client.Request
}

func newFakeClient() *fakeClient {
	return &fakeClient{responses: map[string]any{}, errs: map[string]error{}}
}

func (f *fakeClient) on(method, path string, resp any, err error) *fakeClient {
	key := method + " " + path
	f.responses[key] = resp
	f.errs[key] = err
	return f
}

func (f *fakeClient) Do(_ context.Context, req client.Request, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)

	key := req.Method + " " + req.Path
	if err := f.errs[key]; err != nil {
		return err
	}
	if resp, ok := f.responses[key]; ok && out != nil {
		raw, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, out)
	}
	return nil
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeSession struct {
	token   string
	profile *models.User
	sets    int
	clears  int
}

func (f *fakeSession) SetSession(_ context.Context, token string, profile *models.User) {
	f.sets++
	f.token = token
	f.profile = profile
}

func (f *fakeSession) Clear(context.Context) {
	f.clears++
	f.token = ""
	f.profile = nil
}
