// Package http provides http transport for diacritize
package http

import (
	stdhttp "net/http"

	"mishkal/internal/core/version"
	"mishkal/internal/modkit/httpkit"
	"mishkal/internal/platform/net/http/bind"
	"mishkal/internal/services/api/diacritize/domain"
	svc "mishkal/internal/services/api/diacritize/service"
)

// bindOpts ignores unknown fields, puts no cap on the body and renders messages in arabic
var bindOpts = bind.JSONOptions{Locale: bind.LocaleAR}

func init() { bind.RegisterLabel(bind.LocaleAR, "text", "النص") }

// Register mounts the diacritize endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, version.Service, "/diacritize", bindOpts, h.diacritize, h.rejected)
}

type handlers struct{ svc svc.Service }

// MissingText is the single client error: text absent, null or unreadable
func MissingText() error {
	return bind.Validate(domain.DiacritizeInput{}, bind.LocaleAR)
}

// @Summary Diacritize Arabic text
// @Tags Diacritize
// @Accept json
// @Produce json
// @Param payload body domain.DiacritizeInput true "Text"
// @Success 200 {object} domain.Reply "ok"
// @Router /diacritize [post]
func (h *handlers) diacritize(r *stdhttp.Request, in domain.DiacritizeInput) (any, error) {
	res, err := h.svc.Diacritize(r.Context(), *in.Text)
	if err != nil {
		return nil, err
	}
	return domain.NewReply(res, version.Service), nil
}

// rejected records the bind failure; body problems of any kind look the same to clients as a missing key
func (h *handlers) rejected(r *stdhttp.Request, err error) error {
	h.svc.Rejected(r.Context(), err)
	return MissingText()
}
