// Package googletasks reads task lists from the Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"taskapp/internal/config"
	"taskapp/internal/service"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// APITimeout bounds every API call.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope requested at login. taskapp only reads.
	Scope = tasks.TasksReadonlyScope
)

// Client implements service.Service on top of the Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// OAuthConfig loads the OAuth client credentials from the config dir.
func OAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.OAuthClientFile, err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.OAuthClientFile, err)
	}
	return oauthConfig, nil
}

// LoadToken reads the stored OAuth token.
func LoadToken(cfg *config.Config) (*oauth2.Token, error) {
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", config.TokenFile, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.TokenFile, err)
	}
	return &token, nil
}

// New creates a client from the stored credentials.
// Requires oauth_client.json and token.json in the config dir.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	oauthConfig, err := OAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	token, err := LoadToken(cfg)
	if err != nil {
		return nil, err
	}

	// The token source refreshes expired access tokens.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client that sends requests through httpClient.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// DefaultList implements service.Service.
func (c *Client) DefaultList(ctx context.Context) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	list, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	return service.TaskList{
		ID:        DefaultListID,
		Title:     list.Title,
		IsDefault: true,
	}, nil
}

// ListLists implements service.Service.
// The default list is reported with DefaultListID rather than its real ID.
func (c *Client) ListLists(ctx context.Context) ([]service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	def, err := c.svc.Tasklists.Get(DefaultListID).Context(ctx).Do()
	if err != nil {
		return nil, wrapError(err)
	}

	var result []service.TaskList
	err = c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			tl := service.TaskList{ID: list.Id, Title: list.Title}
			if list.Id == def.Id {
				tl.ID = DefaultListID
				tl.IsDefault = true
			}
			result = append(result, tl)
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ResolveList implements service.Service.
func (c *Client) ResolveList(ctx context.Context, name string) (service.TaskList, error) {
	lists, err := c.ListLists(ctx)
	if err != nil {
		return service.TaskList{}, err
	}
	return MatchList(lists, name)
}

// MatchList picks the single list whose trimmed title equals name, ignoring case.
func MatchList(lists []service.TaskList, name string) (service.TaskList, error) {
	name = strings.TrimSpace(name)

	var matches []service.TaskList
	for _, list := range lists {
		if strings.EqualFold(strings.TrimSpace(list.Title), name) {
			matches = append(matches, list)
		}
	}

	switch len(matches) {
	case 0:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return service.TaskList{}, fmt.Errorf("%w: %s", service.ErrAmbiguousList, name)
	}
}

// ListOpenTasks implements service.Service.
// A short page does not end the walk; only an empty next page token does.
func (c *Client) ListOpenTasks(ctx context.Context, listID string) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []service.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(service.PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				result = append(result, service.Task{
					ID:     t.Id,
					Title:  t.Title,
					Status: t.Status,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// wrapError maps API errors to messages the CLI can show.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded"):
		return fmt.Errorf("request timed out")
	case strings.Contains(msg, "401"), strings.Contains(msg, "403"):
		return fmt.Errorf("token expired or revoked (run: taskapp login)")
	case strings.Contains(msg, "404"):
		return fmt.Errorf("not found")
	}
	return err
}
