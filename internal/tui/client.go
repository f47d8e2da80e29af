package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/veloria/warranty-portal/internal/storage"
)

// Case is the flattened unified-lookup response: the record's own fields plus
// the type discriminator. Only the fields the status view renders are decoded.
type Case struct {
	Type           string    `json:"type"`
	ID             string    `json:"id"`
	OrderNumber    string    `json:"orderNumber"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submissionDate"`
}

// APIError carries the server-provided error message so the form can show it
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SubmitClaim(claim storage.Claim) (*storage.Claim, error) {
	body, err := json.Marshal(claim)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Post(c.baseURL+"/api/claims", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var created storage.Claim
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) FindCaseByID(id string) (*Case, error) {
	return c.getCase(c.baseURL + "/api/cases/" + url.PathEscape(id))
}

func (c *Client) FindCase(orderNumber, email string) (*Case, error) {
	q := url.Values{}
	q.Set("orderNumber", orderNumber)
	q.Set("email", email)
	return c.getCase(c.baseURL + "/api/cases?" + q.Encode())
}

func (c *Client) getCase(u string) (*Case, error) {
	resp, err := c.http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var found Case
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return nil, err
	}
	return &found, nil
}

func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
}
