package partnership

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// FlexInt tolerates a JSON number or a numeric string; anything else, a null
// included, coerces to zero. Admin frontends historically sent the order field
// both ways.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

type CreatePartnershipRequest struct {
	Name    string  `json:"name" binding:"required"`
	URL     string  `json:"url"`
	LogoURL string  `json:"logoUrl"`
	Visible *bool   `json:"visible"`
	Order   FlexInt `json:"order"`
}

type UpdatePartnershipRequest struct {
	Name    *string  `json:"name"`
	URL     *string  `json:"url"`
	LogoURL *string  `json:"logoUrl"`
	Visible *bool    `json:"visible"`
	Order   *FlexInt `json:"order"`
}

type PartnershipResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	LogoURL   string    `json:"logoUrl"`
	Visible   bool      `json:"visible"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
