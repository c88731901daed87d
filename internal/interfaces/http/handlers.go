package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garyjia/timebank/internal/application/service"
	"github.com/garyjia/timebank/internal/domain/entity"
	"github.com/garyjia/timebank/internal/metrics"
)

// actingUserHeader identifies the caller for role checks. There is no
// authentication layer; the header is trusted as-is.
const actingUserHeader = "X-User-ID"

// Handlers contains all HTTP request handlers
type Handlers struct {
	services Services
	metrics  *metrics.Metrics
	logger   Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(services Services, m *metrics.Metrics, logger Logger) *Handlers {
	return &Handlers{services: services, metrics: m, logger: logger}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// adminOnly gates mutating admin routes on the acting user's role
func (h *Handlers) adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actingID := c.GetHeader(actingUserHeader)
		if actingID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Success: false,
				Error:   "missing " + actingUserHeader + " header",
			})
			return
		}

		user, err := h.services.Users.Get(c.Request.Context(), actingID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Success: false,
				Error:   "unknown acting user",
			})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, Response{
				Success: false,
				Error:   "admin role required",
			})
			return
		}

		c.Next()
	}
}

// ListUsers handles GET /api/v1/users
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list users")
		return
	}
	h.ok(c, users)
}

// GetUser handles GET /api/v1/users/:id
func (h *Handlers) GetUser(c *gin.Context) {
	user, err := h.services.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to get user")
		return
	}
	h.ok(c, user)
}

// CreateUser handles POST /api/v1/users
func (h *Handlers) CreateUser(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	user, err := h.services.Users.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, Response{Success: true, Data: user})
}

// GetDashboard handles GET /api/v1/users/:id/dashboard
func (h *Handlers) GetDashboard(c *gin.Context) {
	dashboard, err := h.services.Users.GetDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to load dashboard")
		return
	}
	h.ok(c, dashboard)
}

// ListUserTransactions handles GET /api/v1/users/:id/transactions
func (h *Handlers) ListUserTransactions(c *gin.Context) {
	transactions, err := h.services.Users.Transactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list transactions")
		return
	}
	h.ok(c, transactions)
}

// ListNotifications handles GET /api/v1/users/:id/notifications
func (h *Handlers) ListNotifications(c *gin.Context) {
	notifications, err := h.services.Notifications.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to list notifications")
		return
	}
	h.ok(c, notifications)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read
func (h *Handlers) MarkNotificationRead(c *gin.Context) {
	if err := h.services.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to mark notification read")
		return
	}
	h.ok(c, gin.H{"read": true})
}

// GetCreditScore handles GET /api/v1/users/:id/score
func (h *Handlers) GetCreditScore(c *gin.Context) {
	score, err := h.services.Analytics.CreditScore(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to compute credit score")
		return
	}
	h.ok(c, score)
}

// GetLeaderboard handles GET /api/v1/leaderboard
func (h *Handlers) GetLeaderboard(c *gin.Context) {
	entries, err := h.services.Analytics.Leaderboard(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to build leaderboard")
		return
	}
	h.ok(c, entries)
}

// ListAutomations handles GET /api/v1/automations with optional
// status or user_id filters
func (h *Handlers) ListAutomations(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		automations []*entity.Automation
		err         error
	)
	switch {
	case c.Query("status") != "":
		automations, err = h.services.Automations.ListByStatus(ctx, c.Query("status"))
	case c.Query("user_id") != "":
		automations, err = h.services.Automations.ListByUser(ctx, c.Query("user_id"))
	default:
		automations, err = h.services.Automations.List(ctx)
	}
	if err != nil {
		h.fail(c, err, "failed to list automations")
		return
	}
	h.ok(c, automations)
}

// GetAutomation handles GET /api/v1/automations/:id
func (h *Handlers) GetAutomation(c *gin.Context) {
	automation, err := h.services.Automations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to get automation")
		return
	}
	h.ok(c, automation)
}

// SubmitAutomation handles POST /api/v1/automations
func (h *Handlers) SubmitAutomation(c *gin.Context) {
	var input service.SubmitAutomationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	automation, err := h.services.Automations.Submit(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err, "failed to submit automation")
		return
	}

	if h.metrics != nil {
		h.metrics.AutomationsSubmitted.Inc()
	}
	c.JSON(http.StatusCreated, Response{Success: true, Data: automation})
}

// ApproveAutomation handles POST /api/v1/automations/:id/approve
func (h *Handlers) ApproveAutomation(c *gin.Context) {
	automation, err := h.services.Automations.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to approve automation")
		return
	}

	if h.metrics != nil {
		h.metrics.AutomationDecisions.WithLabelValues("approved").Inc()
		h.metrics.CreditsAwarded.Add(float64(automation.CreditsEarned))
	}
	h.ok(c, automation)
}

// RejectAutomation handles POST /api/v1/automations/:id/reject
func (h *Handlers) RejectAutomation(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body) // reason is optional

	automation, err := h.services.Automations.Reject(c.Request.Context(), c.Param("id"), body.Reason)
	if err != nil {
		h.fail(c, err, "failed to reject automation")
		return
	}

	if h.metrics != nil {
		h.metrics.AutomationDecisions.WithLabelValues("rejected").Inc()
	}
	h.ok(c, automation)
}

// ListRewards handles GET /api/v1/rewards; ?available=true narrows to
// the currently offered catalog
func (h *Handlers) ListRewards(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		rewards []*entity.Reward
		err     error
	)
	if c.Query("available") == "true" {
		rewards, err = h.services.Rewards.ListAvailable(ctx)
	} else {
		rewards, err = h.services.Rewards.List(ctx)
	}
	if err != nil {
		h.fail(c, err, "failed to list rewards")
		return
	}
	h.ok(c, rewards)
}

// CreateReward handles POST /api/v1/rewards
func (h *Handlers) CreateReward(c *gin.Context) {
	var input service.CreateRewardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	reward, err := h.services.Rewards.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err, "failed to create reward")
		return
	}
	c.JSON(http.StatusCreated, Response{Success: true, Data: reward})
}

// ListRedemptions handles GET /api/v1/redemptions with optional
// status or user_id filters
func (h *Handlers) ListRedemptions(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		redemptions []*entity.Redemption
		err         error
	)
	switch {
	case c.Query("status") != "":
		redemptions, err = h.services.Redemptions.ListByStatus(ctx, c.Query("status"))
	case c.Query("user_id") != "":
		redemptions, err = h.services.Redemptions.ListByUser(ctx, c.Query("user_id"))
	default:
		redemptions, err = h.services.Redemptions.List(ctx)
	}
	if err != nil {
		h.fail(c, err, "failed to list redemptions")
		return
	}
	h.ok(c, redemptions)
}

// RequestRedemption handles POST /api/v1/redemptions
func (h *Handlers) RequestRedemption(c *gin.Context) {
	var body struct {
		UserID   string `json:"user_id" binding:"required"`
		RewardID string `json:"reward_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "user_id and reward_id are required")
		return
	}

	redemption, err := h.services.Redemptions.Request(c.Request.Context(), body.UserID, body.RewardID)
	if err != nil {
		h.fail(c, err, "failed to request redemption")
		return
	}

	if h.metrics != nil {
		h.metrics.RedemptionsRequested.Inc()
	}
	c.JSON(http.StatusCreated, Response{Success: true, Data: redemption})
}

// ApproveRedemption handles POST /api/v1/redemptions/:id/approve
func (h *Handlers) ApproveRedemption(c *gin.Context) {
	var body struct {
		Comment string `json:"comment"`
	}
	_ = c.ShouldBindJSON(&body)

	redemption, err := h.services.Redemptions.Approve(c.Request.Context(), c.Param("id"), body.Comment)
	if err != nil {
		h.fail(c, err, "failed to approve redemption")
		return
	}

	if h.metrics != nil {
		h.metrics.RedemptionDecisions.WithLabelValues("approved").Inc()
		h.metrics.CreditsSpent.Add(float64(redemption.CreditsCost))
	}
	h.ok(c, redemption)
}

// RejectRedemption handles POST /api/v1/redemptions/:id/reject
func (h *Handlers) RejectRedemption(c *gin.Context) {
	var body struct {
		Comment string `json:"comment"`
	}
	_ = c.ShouldBindJSON(&body)

	redemption, err := h.services.Redemptions.Reject(c.Request.Context(), c.Param("id"), body.Comment)
	if err != nil {
		h.fail(c, err, "failed to reject redemption")
		return
	}

	if h.metrics != nil {
		h.metrics.RedemptionDecisions.WithLabelValues("rejected").Inc()
	}
	h.ok(c, redemption)
}

// FulfillRedemption handles POST /api/v1/redemptions/:id/fulfill
func (h *Handlers) FulfillRedemption(c *gin.Context) {
	redemption, err := h.services.Redemptions.Fulfill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fulfill redemption")
		return
	}

	if h.metrics != nil {
		h.metrics.RedemptionDecisions.WithLabelValues("fulfilled").Inc()
	}
	h.ok(c, redemption)
}

// ListChallenges handles GET /api/v1/challenges
func (h *Handlers) ListChallenges(c *gin.Context) {
	standings, err := h.services.Analytics.Challenges(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list challenges")
		return
	}
	h.ok(c, standings)
}

// AnalyticsOverview handles GET /api/v1/analytics/overview
func (h *Handlers) AnalyticsOverview(c *gin.Context) {
	overview, err := h.services.Analytics.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to compute overview")
		return
	}
	h.ok(c, overview)
}

// AnalyticsDepartments handles GET /api/v1/analytics/departments
func (h *Handlers) AnalyticsDepartments(c *gin.Context) {
	stats, err := h.services.Analytics.DepartmentStats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to compute department stats")
		return
	}
	h.ok(c, stats)
}

// AnalyticsCategories handles GET /api/v1/analytics/categories
func (h *Handlers) AnalyticsCategories(c *gin.Context) {
	stats, err := h.services.Analytics.CategoryStats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to compute category stats")
		return
	}
	h.ok(c, stats)
}

// AnalyticsRewards handles GET /api/v1/analytics/rewards
func (h *Handlers) AnalyticsRewards(c *gin.Context) {
	stats, err := h.services.Analytics.RewardStats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to compute reward stats")
		return
	}
	h.ok(c, stats)
}

// AnalyticsROI handles GET /api/v1/analytics/roi
func (h *Handlers) AnalyticsROI(c *gin.Context) {
	roi, err := h.services.Analytics.ROI(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to compute roi")
		return
	}
	h.ok(c, roi)
}

// AnalyticsScores handles GET /api/v1/analytics/scores
func (h *Handlers) AnalyticsScores(c *gin.Context) {
	scores, err := h.services.Analytics.CreditScores(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to compute credit scores")
		return
	}
	h.ok(c, scores)
}

// ExportAnalytics handles GET /api/v1/analytics/export
func (h *Handlers) ExportAnalytics(c *gin.Context) {
	data, filename, err := h.services.Reports.Export(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to export analytics")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handlers) ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func (h *Handlers) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: msg})
}

// fail maps service errors onto HTTP statuses
func (h *Handlers) fail(c *gin.Context, err error, msg string) {
	h.logger.Error(msg, "error", err, "path", c.Request.URL.Path)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyDecided),
		errors.Is(err, service.ErrInsufficientCredits),
		errors.Is(err, service.ErrRewardUnavailable):
		status = http.StatusConflict
	}

	c.JSON(status, Response{Success: false, Error: err.Error()})
}
