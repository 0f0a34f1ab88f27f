package driver

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
)

// ElasticsearchDriver executes query documents against Elasticsearch. The
// underlying client is safe for concurrent use; one driver serves all
// in-flight searches.
type ElasticsearchDriver struct {
	client *elasticsearch.Client
}

// NewClient builds an Elasticsearch client for the given addresses.
// Username and password may be empty for unauthenticated clusters.
func NewClient(addresses []string, username, password string) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Username:  username,
		Password:  password,
	})
}

// NewElasticsearchDriver wraps an Elasticsearch client.
func NewElasticsearchDriver(client *elasticsearch.Client) *ElasticsearchDriver {
	return &ElasticsearchDriver{client: client}
}

// Search sends the serialized query body to the engine and decodes the
// hits envelope. Transport failures and engine-reported errors both come
// back as DriverError.
func (d *ElasticsearchDriver) Search(ctx context.Context, index, body string) (*SearchResponse, error) {
	res, err := d.client.Search(
		d.client.Search.WithContext(ctx),
		d.client.Search.WithIndex(index),
		d.client.Search.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return nil, &DriverError{Op: "Search", Err: err.Error()}
	}
	defer res.Body.Close()

	if res.IsError() {
		raw, _ := io.ReadAll(res.Body)
		return nil, &DriverError{Op: "Search", Err: res.Status() + ": " + string(raw)}
	}

	var parsed SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, &DriverError{Op: "Search", Err: "decode response: " + err.Error()}
	}
	return &parsed, nil
}
