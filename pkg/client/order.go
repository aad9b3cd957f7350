package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"ashiyu/pkg/model"
)

type OrderClient struct {
	httpClient *HttpClient
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *OrderClient) Place(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/orders", body)
}

func (c *OrderClient) PlaceMaster(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/v1/orders/master", body)
}

func (c *OrderClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/orders")
}

func (c *OrderClient) Delete(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.DELETE(ctx, "/api/v1/orders/id/"+url.PathEscape(id))
}

func (c *OrderClient) DeleteAll(ctx context.Context) (*Response, error) {
	return c.httpClient.DELETE(ctx, "/api/v1/orders")
}

func (c *OrderClient) SeatToken(ctx context.Context, seat int) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/v1/orders/token/"+strconv.Itoa(seat))
}

// DecodeOrdersBySeat unwraps the grouped order board: seat number -> orders.
func (c *OrderClient) DecodeOrdersBySeat(resp *Response) (map[int][]*model.Order, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode order board wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	// JSON object keys are strings; convert back to seat numbers.
	var raw map[string][]*model.Order
	if err := json.Unmarshal(wrapper.Data, &raw); err != nil {
		return nil, fmt.Errorf("could not decode order board json:\n%+v\n%s", resp.ToString(), err)
	}

	board := make(map[int][]*model.Order, len(raw))
	for k, orders := range raw {
		seat, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("order board contains non-numeric seat key %q", k)
		}
		board[seat] = orders
	}
	return board, nil
}

// FetchBoard retrieves and decodes the grouped order board in one call.
func (c *OrderClient) FetchBoard(ctx context.Context) (map[int][]*model.Order, error) {
	resp, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("order board request failed: %s", GetErrorMessage(resp))
	}
	return c.DecodeOrdersBySeat(resp)
}

func (c *OrderClient) DecodeOrder(resp *Response) (*model.Order, error) {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &wrapper); err != nil {
		return nil, fmt.Errorf("could not decode order wrapper:\n%+v\n%s", resp.ToString(), err)
	}

	var order model.Order
	if err := json.Unmarshal(wrapper.Data, &order); err != nil {
		return nil, fmt.Errorf("could not decode order json:\n%+v\n%s", resp.ToString(), err)
	}
	return &order, nil
}
