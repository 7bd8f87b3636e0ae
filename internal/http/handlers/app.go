package handlers

import (
	"net/http"
	"time"

	"buspass/internal/domain/models"
	"buspass/internal/domain/pass"
	"buspass/internal/flow"
	"buspass/internal/http/middleware"
	"buspass/internal/services"
	"buspass/internal/session"
	"buspass/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "pass_session"

	pathPasses  = "/app/passes"
	pathPayment = "/app/payment"
	pathPass    = "/app/pass"
)

// AppHandlers serves the applicant-facing booking flow. Each visitor is identified by the
// pass_session cookie; the flow state lives in Store under that id.
type AppHandlers struct {
	Flow         flow.Flow
	Store        session.Store
	SessionTTL   time.Duration
	SecureCookie bool
}

func (h AppHandlers) Mount(g *gin.RouterGroup) {
	g.GET("/passes", h.Passes)
	g.POST("/apply/:passKey", h.Apply)
	g.GET("/payment", h.Payment)
	g.POST("/payment/complete", h.CompletePayment)
	g.GET("/pass", h.Pass)
	g.GET("/pass.pdf", h.PassPDF)
	g.GET("/admin", h.Admin)
}

// session returns the visitor's session, issuing a new cookie when the request has none
// or carries a malformed one.
func (h AppHandlers) session(c *gin.Context) *session.Session {
	id, err := c.Cookie(SessionCookie)
	if err == nil {
		_, err = uuid.Parse(id)
	}
	if err != nil {
		id = uuid.NewString()
		maxAge := 0
		if h.SessionTTL > 0 {
			maxAge = int(h.SessionTTL / time.Second)
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, maxAge, "/app", "", h.SecureCookie, true)
	}
	return session.New(h.Store, id)
}

// Passes lists the catalog and restarts the flow.
func (h AppHandlers) Passes(c *gin.Context) {
	sess := h.session(c)
	if err := h.Flow.Restart(c.Request.Context(), sess); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "flow", "restart_failed", err.Error())
	}
	c.JSON(http.StatusOK, pass.Catalog())
}

func (h AppHandlers) Apply(c *gin.Context) {
	var form models.PersonalInfoForm
	if !DecodeStrictJSON(c, &form) {
		return
	}
	kind := pass.Kind(c.Param("passKey"))
	if k, ok := pass.ParseKind(c.Param("passKey")); ok {
		kind = k
	}

	info, err := h.Flow.Submit(c.Request.Context(), h.session(c), form, kind)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "flow", "submit_failed", err.Error())
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"next": pathPayment, "pass_info": info})
}

func (h AppHandlers) Payment(c *gin.Context) {
	summary, err := h.Flow.Payment(c.Request.Context(), h.session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h AppHandlers) CompletePayment(c *gin.Context) {
	step, err := h.Flow.CompletePayment(c.Request.Context(), h.session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": pathPass, "step": step})
}

func (h AppHandlers) Pass(c *gin.Context) {
	view, _, err := h.Flow.Generated(c.Request.Context(), h.session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h AppHandlers) PassPDF(c *gin.Context) {
	_, info, err := h.Flow.Generated(c.Request.Context(), h.session(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	body, filename, err := docs.GeneratePass(services.PassDocumentFromInfo(info))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, filename, body)
}

// Admin always answers 200; a failed fetch shows up as the view's notice.
func (h AppHandlers) Admin(c *gin.Context) {
	c.JSON(http.StatusOK, h.Flow.Admin(c.Request.Context()))
}
