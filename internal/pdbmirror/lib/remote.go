package lib

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/structbio/pdbmirror-go/internal/pdbmirror/types"
)

var log = logging.Logger("pdbmirror")

// Remote issues the read-only requests against the archive server. All
// failures come back as *types.RemoteError so callers can tell a missing
// entry from an unreachable host.
type Remote struct {
	client *http.Client
}

// NewRemote returns a Remote using the given HTTP client, or
// http.DefaultClient when nil.
func NewRemote(client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{client: client}
}

// open performs the GET and normalizes status handling. The caller owns
// the returned body.
func (r *Remote) open(url string) (io.ReadCloser, error) {
	resp, err := r.client.Get(url)
	if err != nil {
		return nil, &types.RemoteError{URL: url, Err: err}
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, &types.RemoteError{URL: url, NotFound: true}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &types.RemoteError{URL: url, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return resp.Body, nil
}

// Download streams a remote resource into a local file, creating or
// truncating it. The partially written file is removed on failure so a
// later run never mistakes it for a completed download.
func (r *Remote) Download(url, dest string) error {
	body, err := r.open(url)
	if err != nil {
		return err
	}
	defer body.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(dest)
		return &types.RemoteError{URL: url, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	log.Debugw("downloaded", "url", url, "dest", dest)
	return nil
}

// Lines fetches a remote text resource and returns its non-empty lines.
func (r *Remote) Lines(url string) ([]string, error) {
	body, err := r.open(url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var lines []string
	scanner := bufio.NewScanner(body)
	// entries.idx lines run well past bufio's default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &types.RemoteError{URL: url, Err: err}
	}
	return lines, nil
}
