package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(placeIDs []int) ([]byte, error)
}

// DefaultQRGenerator encodes the rating page link for an itinerary so a
// traveler can open the post-visit rating form from their phone.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(placeIDs []int) ([]byte, error) {
	ids := make([]string, 0, len(placeIDs))
	for _, id := range placeIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	qrData := fmt.Sprintf("%s/rate.html?places=%s", g.BaseURL, strings.Join(ids, ","))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
