package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
)

// HTTPSellerNotifier posts seller-facing messages to the notification
// service. Delivery is fire-and-forget: a failed notification is logged and
// never fails the financial operation that produced it.
type HTTPSellerNotifier struct {
	Address string
}

func NewHTTPSellerNotifier(address string) *HTTPSellerNotifier {
	return &HTTPSellerNotifier{Address: address}
}

func (n *HTTPSellerNotifier) NotifySeller(notification domain.Notification) {
	go func() {
		body, err := json.Marshal(NotificationPayload{
			SellerID: notification.SellerID,
			Kind:     notification.Kind,
			Message:  notification.Message,
			Amount:   notification.Amount,
			Currency: notification.Currency,
		})
		if err != nil {
			log.Printf("Failed to marshal notification: %v\n", err)
			return
		}

		url := fmt.Sprintf("%s/notifications", n.Address)
		resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
		if err != nil {
			log.Printf("Notification failed: %v\n", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Printf("Notification returned status %d", resp.StatusCode)
		}
	}()
}
