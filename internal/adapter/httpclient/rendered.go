package httpclient

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/chromedp/chromedp"
)

// Rendered is a Fetcher backed by a headless browser, for pages that only
// produce their markup after JavaScript runs. It is interchangeable with
// Client; the caller's context bounds the whole navigation.
type Rendered struct {
	waitSelector string
}

// NewRendered returns a rendered-page fetcher. When waitSelector is non-empty
// the fetch blocks until that element is visible before capturing the page.
func NewRendered(waitSelector string) *Rendered {
	return &Rendered{waitSelector: waitSelector}
}

func findFirstExecutable(executables ...string) string {
	for _, executable := range executables {
		path, err := exec.LookPath(executable)
		if err == nil {
			return path
		}
	}
	return ""
}

func (r *Rendered) Fetch(ctx context.Context, url string) ([]byte, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	opts = append(opts, chromedp.Flag("headless", true))

	if execPath := findFirstExecutable("google-chrome", "chromium-browser", "chromium"); execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	actions := []chromedp.Action{chromedp.Navigate(url)}
	if r.waitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(r.waitSelector, chromedp.ByQuery))
	}

	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))

	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return nil, fmt.Errorf("rendered fetch %s: %w", url, err)
	}
	return []byte(html), nil
}
