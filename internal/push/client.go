package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client habla con el gateway de push. Un intento por mensaje:
// sin retry, sin backoff. Si falla, falla.
type Client struct {
	gatewayURL string
	client     *http.Client
}

func NewClient(gatewayURL string) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send postea el mensaje y devuelve el cuerpo que respondió el gateway
// (los endpoints de notify lo devuelven tal cual al caller).
func (c *Client) Send(ctx context.Context, msg Message) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.gatewayURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("push gateway response: %w", err)
	}
	return data, nil
}
