// Package proxmox implements a minimal client for the Proxmox VE HTTP API.
//
// Accessors return values decoded straight from the API's JSON envelope as
// generic maps. The API is not schema-stable across versions, so shaping and
// defaulting the payloads is deliberately left to the report layer; this
// package only owns transport, authentication, and envelope unwrapping.
package proxmox

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config holds connection settings for one Proxmox VE endpoint.
type Config struct {
	// Host is the API endpoint, e.g. "https://pve.example.com:8006".
	Host string
	// TokenID is the API token identifier, e.g. "root@pam!mcp".
	TokenID string
	// TokenSecret is the API token secret value.
	TokenSecret string
	// VerifySSL controls TLS certificate verification. Proxmox ships with
	// self-signed certificates, so this is commonly disabled in labs.
	VerifySSL bool
	// Timeout bounds each API request. Zero means the default.
	Timeout time.Duration
}

// Client is an authenticated Proxmox VE API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
}

// NewClient creates a client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("proxmox host is required")
	}
	if cfg.TokenID == "" || cfg.TokenSecret == "" {
		return nil, fmt.Errorf("proxmox API token id and secret are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{}
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	base := strings.TrimSuffix(cfg.Host, "/")
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:    base + "/api2/json",
		authHeader: fmt.Sprintf("PVEAPIToken=%s=%s", cfg.TokenID, cfg.TokenSecret),
	}, nil
}

// get performs a GET against an API path and decodes the "data" envelope
// member into out. A null or absent data member leaves out untouched.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api error %d on %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode data from %s: %w", path, err)
	}
	return nil
}

func (c *Client) getList(ctx context.Context, path string, query url.Values) ([]map[string]any, error) {
	var items []map[string]any
	if err := c.get(ctx, path, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) getObject(ctx context.Context, path string) (map[string]any, error) {
	var obj map[string]any
	if err := c.get(ctx, path, nil, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// GetNodes lists the nodes in the cluster.
func (c *Client) GetNodes(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/nodes", nil)
}

// GetNodeStatus returns the status payload for one node.
func (c *Client) GetNodeStatus(ctx context.Context, node string) (map[string]any, error) {
	return c.getObject(ctx, "/nodes/"+url.PathEscape(node)+"/status")
}

// GetVMs lists QEMU virtual machines on a node.
func (c *Client) GetVMs(ctx context.Context, node string) ([]map[string]any, error) {
	return c.getList(ctx, "/nodes/"+url.PathEscape(node)+"/qemu", nil)
}

// GetContainers lists LXC containers on a node.
func (c *Client) GetContainers(ctx context.Context, node string) ([]map[string]any, error) {
	return c.getList(ctx, "/nodes/"+url.PathEscape(node)+"/lxc", nil)
}

// GetStorage lists the storage pools visible on a node.
func (c *Client) GetStorage(ctx context.Context, node string) ([]map[string]any, error) {
	return c.getList(ctx, "/nodes/"+url.PathEscape(node)+"/storage", nil)
}

// GetStorageContent lists the volumes on one storage.
func (c *Client) GetStorageContent(ctx context.Context, node, storage string) ([]map[string]any, error) {
	path := "/nodes/" + url.PathEscape(node) + "/storage/" + url.PathEscape(storage) + "/content"
	return c.getList(ctx, path, nil)
}

// GetStorageStatus returns usage totals for one storage.
func (c *Client) GetStorageStatus(ctx context.Context, node, storage string) (map[string]any, error) {
	path := "/nodes/" + url.PathEscape(node) + "/storage/" + url.PathEscape(storage) + "/status"
	return c.getObject(ctx, path)
}

// GetDisks lists the physical disks on a node.
func (c *Client) GetDisks(ctx context.Context, node string, includePartitions bool) ([]map[string]any, error) {
	query := url.Values{}
	if includePartitions {
		query.Set("include-partitions", "1")
	} else {
		query.Set("include-partitions", "0")
	}
	return c.getList(ctx, "/nodes/"+url.PathEscape(node)+"/disks/list", query)
}

// GetClusterStatus returns the cluster/status listing (cluster entry plus one
// entry per node).
func (c *Client) GetClusterStatus(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/cluster/status", nil)
}
