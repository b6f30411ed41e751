package services

import (
	"fmt"
	"time"

	"press_manager/internal/models"
	"press_manager/internal/pricing"
)

// Display markers. A line that cannot be priced shows the invalid marker
// instead of a partial or zero total; a line whose service has left the
// catalog renders a placeholder rather than failing the whole list.
const (
	InvalidTotalMarker = "invalid input"
	UnknownServiceName = "unknown service"
)

type LineView struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Detail      string `json:"detail"`
	Total       string `json:"total"`
	ImageURL    string `json:"image_url,omitempty"`
}

type OrderView struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Phone     string             `json:"phone"`
	Location  string             `json:"location"`
	Status    models.OrderStatus `json:"status"`
	OrderDate time.Time          `json:"order_date"`
	Services  []LineView         `json:"services"`
	Total     string             `json:"total"`
}

// buildOrderView resolves line items against the current catalog. Name
// and price are re-resolved at render time, not frozen at order creation.
func buildOrderView(catalog map[string]models.Service, order models.Order) OrderView {
	view := OrderView{
		ID:        order.ID,
		Name:      order.Name,
		Phone:     order.Phone,
		Location:  order.Location,
		Status:    order.Status,
		OrderDate: order.OrderDate,
		Services:  make([]LineView, 0, len(order.Services)),
	}

	var total float64
	invalid := false

	for _, item := range order.Services {
		line := LineView{ServiceID: item.ServiceID, ImageURL: item.ImageURL}

		service, ok := catalog[item.ServiceID]
		if !ok {
			line.ServiceName = UnknownServiceName
			line.Total = InvalidTotalMarker
			invalid = true
			view.Services = append(view.Services, line)
			continue
		}

		line.ServiceName = service.Name
		switch service.PricingMode {
		case models.PricingPerArea:
			line.Detail = fmt.Sprintf("%s x %s m²", item.Length, item.Width)
		default:
			line.Detail = fmt.Sprintf("%s pcs", item.Quantity)
		}

		lineTotal, err := pricing.LineTotal(service, item)
		if err != nil {
			line.Total = InvalidTotalMarker
			invalid = true
		} else {
			line.Total = pricing.FormatAmount(lineTotal)
			total += lineTotal
		}

		view.Services = append(view.Services, line)
	}

	if invalid {
		view.Total = InvalidTotalMarker
	} else {
		view.Total = pricing.FormatAmount(total)
	}

	return view
}

func buildOrderViews(catalog map[string]models.Service, orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, buildOrderView(catalog, order))
	}
	return views
}
