package pricing

import (
	"errors"
	"math"
	"regexp"
	"strconv"

	"press_manager/internal/models"
)

var (
	ErrInvalidMeasurement = errors.New("invalid measurement input")
	ErrServiceNotFound    = errors.New("service not found in catalog")
)

// decimalPattern accepts non-negative decimals with at most two fraction
// digits. Prices, quantities and dimensions all use it.
var decimalPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func IsDecimal(value string) bool {
	return decimalPattern.MatchString(value)
}

func parseDecimal(value string) (float64, error) {
	if !decimalPattern.MatchString(value) {
		return 0, ErrInvalidMeasurement
	}
	return strconv.ParseFloat(value, 64)
}

// LineTotal computes the total for a single line item against the given
// service. Only the operands of the service's pricing mode are read, so a
// stray quantity on a per-area item is ignored rather than rejected.
func LineTotal(service models.Service, item models.LineItem) (float64, error) {
	price, err := parseDecimal(service.Price)
	if err != nil {
		return 0, err
	}

	switch service.PricingMode {
	case models.PricingPerArea:
		length, err := parseDecimal(item.Length)
		if err != nil {
			return 0, err
		}
		width, err := parseDecimal(item.Width)
		if err != nil {
			return 0, err
		}
		return price * length * width, nil
	case models.PricingPerUnit:
		quantity, err := parseDecimal(item.Quantity)
		if err != nil {
			return 0, err
		}
		return price * quantity, nil
	default:
		return 0, ErrInvalidMeasurement
	}
}

// OrderTotal sums the line totals of items against the catalog. One
// invalid line poisons the whole total: the error propagates instead of
// the line being skipped. An item referencing a service missing from the
// catalog yields ErrServiceNotFound.
func OrderTotal(catalog map[string]models.Service, items []models.LineItem) (float64, error) {
	var total float64
	for _, item := range items {
		service, ok := catalog[item.ServiceID]
		if !ok {
			return 0, ErrServiceNotFound
		}
		lineTotal, err := LineTotal(service, item)
		if err != nil {
			return 0, err
		}
		total += lineTotal
	}
	return total, nil
}

// FormatAmount renders a total for display, truncating (not rounding)
// toward zero to whole units. Stored values keep full precision.
func FormatAmount(value float64) string {
	return strconv.FormatFloat(math.Trunc(value), 'f', 0, 64)
}

// Catalog indexes services by id for total computation and rendering.
func Catalog(services []models.Service) map[string]models.Service {
	catalog := make(map[string]models.Service, len(services))
	for _, service := range services {
		catalog[service.ID] = service
	}
	return catalog
}
