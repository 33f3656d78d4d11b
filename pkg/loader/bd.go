package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/bd_board/pkg/model"
)

// showBatchSize bounds how many ids go into one `bd show` invocation
// so long boards don't hit argv limits.
const showBatchSize = 50

// BDClient fetches issues by shelling out to the bd CLI.
type BDClient struct {
	// Bin is the bd executable, "bd" by default.
	Bin string
}

// NewBDClient returns a client for the bd binary on PATH.
func NewBDClient() *BDClient {
	return &BDClient{Bin: "bd"}
}

// Available reports whether the bd binary can be found.
func (c *BDClient) Available() bool {
	_, err := exec.LookPath(c.bin())
	return err == nil
}

func (c *BDClient) bin() string {
	if c.Bin != "" {
		return c.Bin
	}
	return "bd"
}

// run executes a bd subcommand and returns stdout.
func (c *BDClient) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.bin(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("bd %s: %s: %w", strings.Join(args, " "), msg, err)
		}
		return nil, fmt.Errorf("bd %s: %w", strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}

// ListActive returns the full records (with relationship fields) of
// every issue in one of the given statuses. It runs `bd list --json`
// for the id set, then fans out batched `bd show --json` calls for the
// dependency data that list output omits.
func (c *BDClient) ListActive(ctx context.Context, statuses []model.Status) ([]model.Issue, error) {
	out, err := c.run(ctx, "list", "--json")
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, nil
	}

	var all []model.Issue
	if err := json.Unmarshal(out, &all); err != nil {
		return nil, fmt.Errorf("parse bd list output: %w", err)
	}

	allowed := make(map[model.Status]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	var ids []string
	for _, issue := range all {
		// A nil status list means the whole store.
		if statuses == nil || allowed[issue.Status] {
			ids = append(ids, issue.ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return c.Show(ctx, ids)
}

// Show fetches full details for the given ids, preserving id order
// across concurrently executed batches.
func (c *BDClient) Show(ctx context.Context, ids []string) ([]model.Issue, error) {
	var batches [][]string
	for len(ids) > 0 {
		n := showBatchSize
		if n > len(ids) {
			n = len(ids)
		}
		batches = append(batches, ids[:n])
		ids = ids[n:]
	}

	// Each goroutine writes only its own slot, so no lock is needed.
	results := make([][]model.Issue, len(batches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			out, err := c.run(ctx, append([]string{"show", "--json"}, batch...)...)
			if err != nil {
				return err
			}
			if len(bytes.TrimSpace(out)) == 0 {
				return nil
			}
			var issues []model.Issue
			if err := json.Unmarshal(out, &issues); err != nil {
				return fmt.Errorf("parse bd show output: %w", err)
			}
			results[i] = issues
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var issues []model.Issue
	for _, batch := range results {
		issues = append(issues, batch...)
	}
	return issues, nil
}
