// Package web fetches table pages from an http endpoint speaking the
// _sort, _order, _start and _end query protocol.
package web

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	nt "tablo/entity"
)

// Client is a Backend over http.
type Client struct {
	url     *url.URL
	idField string
	client  *http.Client
	logger  nt.Logger
}

// New creates a client for the endpoint at rawUrl.
// A nil client means http.DefaultClient.
func New(rawUrl, idField string, client *http.Client, lgr nt.Logger) (clt *Client, err error) {

	endpoint, err := url.Parse(rawUrl)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse url %q", rawUrl)
		return
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		err = errors.Errorf("url %q needs a scheme and host", rawUrl)
		return
	}

	if client == nil {
		client = http.DefaultClient
	}

	clt = &Client{
		url:     endpoint,
		idField: idField,
		client:  client,
		logger:  lgr,
	}
	return
}

// Name returns the endpoint
func (clt *Client) Name() string {
	return clt.url.String()
}

// FetchPage requests a window of sorted rows.
// Transport, status and decode failures are reported as *nt.NetworkError.
func (clt *Client) FetchPage(ctx context.Context, qry nt.Query) (rows []nt.Row, err error) {

	endpoint := clt.pageUrl(qry)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = errors.Wrapf(err, "failed to create request")
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := clt.client.Do(req)
	if err != nil {
		err = &nt.NetworkError{Cause: errors.Wrapf(err, "failed to get %s", endpoint)}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		err = &nt.NetworkError{Cause: errors.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)}
		return
	}

	var records []map[string]any
	err = json.NewDecoder(resp.Body).Decode(&records)
	if err != nil {
		err = &nt.NetworkError{Cause: errors.Wrapf(err, "failed to decode response from %s", endpoint)}
		return
	}

	rows = make([]nt.Row, len(records))
	for i, record := range records {
		rows[i] = nt.NewRow(record, clt.idField)
	}

	clt.logger.Info(ctx, "fetched page", "url", endpoint, "count", len(rows))
	return
}

// unexported

func (clt *Client) pageUrl(qry nt.Query) string {

	endpoint := *clt.url

	values := endpoint.Query()
	values.Set("_sort", qry.SortField)
	values.Set("_order", string(qry.SortOrder))
	values.Set("_start", strconv.Itoa(qry.OffsetStart))
	values.Set("_end", strconv.Itoa(qry.OffsetEnd))
	endpoint.RawQuery = values.Encode()

	return endpoint.String()
}
