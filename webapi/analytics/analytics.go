package analytics

import (
	analyticssvc "github.com/amirasaad/bankdash/pkg/service/analytics"
	"github.com/amirasaad/bankdash/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// DefaultLimit is the page size used when a listing request omits limit.
const DefaultLimit = 100

// ListQuery is the query string accepted by the listing endpoints.
type ListQuery struct {
	Limit *int `query:"limit" validate:"omitempty,min=0"`
}

func (q *ListQuery) limit() int {
	if q.Limit == nil {
		return DefaultLimit
	}
	return *q.Limit
}

// Routes registers the read-only dashboard endpoints under r.
//
// Routes:
//   - GET /dashboard/stats           : headline summary
//   - GET /transactions              : most recent transactions
//   - GET /transactions/analytics    : daily trends and category breakdown
//   - GET /fraud/alerts              : top fraud alerts
//   - GET /customers                 : customers in storage order
//   - GET /customers/analytics       : segment and risk distributions
//   - GET /risk/assessment           : per risk level transaction metrics
func Routes(r fiber.Router, svc *analyticssvc.Service) {
	r.Get("/dashboard/stats", DashboardStats(svc))
	r.Get("/transactions", ListTransactions(svc))
	r.Get("/transactions/analytics", TransactionAnalytics(svc))
	r.Get("/fraud/alerts", FraudAlerts(svc))
	r.Get("/customers", ListCustomers(svc))
	r.Get("/customers/analytics", CustomerAnalytics(svc))
	r.Get("/risk/assessment", RiskAssessment(svc))
}

// DashboardStats returns a Fiber handler for the dashboard summary.
// @Summary Dashboard summary
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Failure 500 {object} common.ProblemDetails
// @Router /api/dashboard/stats [get]
func DashboardStats(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.DashboardStats(c.UserContext())
		if err != nil {
			log.Errorf("Failed to compute dashboard stats: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute dashboard stats", err)
		}
		return c.JSON(stats)
	}
}

// ListTransactions returns a Fiber handler listing the most recent transactions.
// @Summary Recent transactions
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions [get]
func ListTransactions(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[ListQuery](c)
		if q == nil {
			return err
		}
		txs, err := svc.ListTransactions(c.UserContext(), q.limit())
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return c.JSON(txs)
	}
}

// TransactionAnalytics returns a Fiber handler for daily trends over the
// last 30 days and per category volumes.
// @Summary Transaction analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.TransactionAnalytics
// @Failure 500 {object} common.ProblemDetails
// @Router /api/transactions/analytics [get]
func TransactionAnalytics(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.TransactionAnalytics(c.UserContext())
		if err != nil {
			log.Errorf("Failed to compute transaction analytics: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute transaction analytics", err)
		}
		return c.JSON(out)
	}
}

// FraudAlerts returns a Fiber handler listing transactions whose fraud
// score is above the alert threshold, highest first.
// @Summary Fraud alerts
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.FraudAlert
// @Failure 500 {object} common.ProblemDetails
// @Router /api/fraud/alerts [get]
func FraudAlerts(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		alerts, err := svc.FraudAlerts(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list fraud alerts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list fraud alerts", err)
		}
		return c.JSON(alerts)
	}
}

// ListCustomers returns a Fiber handler listing customers in storage order.
// @Summary Customers
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} domain.Customer
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/customers [get]
func ListCustomers(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[ListQuery](c)
		if q == nil {
			return err
		}
		customers, err := svc.ListCustomers(c.UserContext(), q.limit())
		if err != nil {
			log.Errorf("Failed to list customers: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list customers", err)
		}
		return c.JSON(customers)
	}
}

// CustomerAnalytics returns a Fiber handler for the segment and risk level
// distributions.
// @Summary Customer analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.CustomerAnalytics
// @Failure 500 {object} common.ProblemDetails
// @Router /api/customers/analytics [get]
func CustomerAnalytics(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.CustomerAnalytics(c.UserContext())
		if err != nil {
			log.Errorf("Failed to compute customer analytics: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute customer analytics", err)
		}
		return c.JSON(out)
	}
}

// RiskAssessment returns a Fiber handler for transaction metrics per
// customer risk level.
// @Summary Risk assessment
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.RiskAssessment
// @Failure 500 {object} common.ProblemDetails
// @Router /api/risk/assessment [get]
func RiskAssessment(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.RiskAssessment(c.UserContext())
		if err != nil {
			log.Errorf("Failed to compute risk assessment: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to compute risk assessment", err)
		}
		return c.JSON(out)
	}
}
