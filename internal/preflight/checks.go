package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"songsearch/internal/catalog/itunes"
	"songsearch/internal/lookup"
)

const (
	catalogCheckName = "Catalog"
	catalogProbeTerm = "test"
	catalogTimeout   = 10 * time.Second
)

// CheckCatalog runs a single probe search and verifies the endpoint answers
// with a decodable payload. No retries are attempted.
func CheckCatalog(ctx context.Context, searcher lookup.Searcher) Result {
	if searcher == nil {
		return Result{Name: catalogCheckName, Detail: "no catalog client configured"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	raw, err := searcher.Search(checkCtx, catalogProbeTerm)
	if err != nil {
		return Result{Name: catalogCheckName, Detail: summarizeCatalogError(err)}
	}
	payload, err := lookup.ParsePayload(raw)
	if err != nil {
		return Result{Name: catalogCheckName, Detail: "reachable but payload is not a search response"}
	}
	return Result{Name: catalogCheckName, Passed: true, Detail: fmt.Sprintf("Reachable (%d result(s) for probe)", payload.ResultCount)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeCatalogError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "probe timed out (catalog unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "probe timed out (catalog unreachable)"
	}
	var statusErr *itunes.HTTPStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("catalog returned HTTP %d", statusErr.StatusCode)
	}
	return err.Error()
}
