package proxmox

import (
	"context"
	"net/url"
)

// GetZFSPools lists the ZFS pools on a node.
func (c *Client) GetZFSPools(ctx context.Context, node string) ([]map[string]any, error) {
	return c.getList(ctx, "/nodes/"+url.PathEscape(node)+"/disks/zfs", nil)
}

// GetZFSPoolDetail returns the detailed status of one pool.
//
// The shape of this endpoint's response varies with the Proxmox version and
// the pool's state: it may be a structured object, a raw zpool-status text
// blob, null, or something else. The value is returned as decoded, untyped
// JSON; classification is the report layer's job.
func (c *Client) GetZFSPoolDetail(ctx context.Context, node, pool string) (any, error) {
	var detail any
	path := "/nodes/" + url.PathEscape(node) + "/disks/zfs/" + url.PathEscape(pool)
	if err := c.get(ctx, path, nil, &detail); err != nil {
		return nil, err
	}
	return detail, nil
}
