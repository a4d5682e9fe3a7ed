package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

type sellerProfileBody struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Currency string `json:"currency"`
}

type setRoleBody struct {
	Role string `json:"role"`
}

// HTTPSellerDirectory talks to the seller profile service. The engine reads
// profiles and writes only role markers and listing visibility.
type HTTPSellerDirectory struct {
	Address string
	client  *http.Client
}

func NewHTTPSellerDirectory(address string) *HTTPSellerDirectory {
	return &HTTPSellerDirectory{
		Address: address,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (d *HTTPSellerDirectory) GetSeller(sellerID string) (*domain.SellerProfile, error) {
	resp, err := d.client.Get(fmt.Sprintf("%s/sellers/%s", d.Address, sellerID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: seller %s", domain.ErrNotFound, sellerID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("seller directory returned status %d", resp.StatusCode)
	}

	var body sellerProfileBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &domain.SellerProfile{
		ID:       body.ID,
		Role:     domain.SellerRole(body.Role),
		Currency: body.Currency,
	}, nil
}

func (d *HTTPSellerDirectory) SetRole(sellerID string, role domain.SellerRole) error {
	body, err := json.Marshal(setRoleBody{Role: string(role)})
	if err != nil {
		return err
	}
	return d.post(fmt.Sprintf("%s/sellers/%s/role", d.Address, sellerID), body)
}

func (d *HTTPSellerDirectory) HideListings(sellerID string) error {
	return d.post(fmt.Sprintf("%s/sellers/%s/listings/hide", d.Address, sellerID), nil)
}

func (d *HTTPSellerDirectory) RestorePrivileges(sellerID string) error {
	return d.post(fmt.Sprintf("%s/sellers/%s/restore", d.Address, sellerID), nil)
}

func (d *HTTPSellerDirectory) post(url string, body []byte) error {
	resp, err := d.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("seller directory returned status %d", resp.StatusCode)
	}
	return nil
}
