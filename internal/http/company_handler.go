package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/ops-backend/internal/service"
)

type companyRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	Email            *string `json:"email" binding:"omitempty,email"`
	PhoneNumber      *string `json:"phoneNumber" binding:"omitempty,max=32"`
	LandlinePhone    *string `json:"landlinePhone" binding:"omitempty,max=32"`
	RFC              *string `json:"rfc" binding:"omitempty,max=13"`
	TaxResidence     *string `json:"taxResidence"`
	ConstitutionDate *string `json:"constitutionDate"`
	Archived         *bool   `json:"archived"`
}

func (r companyRequest) input() (service.CompanyInput, error) {
	constitution, err := parseOptionalDate(r.ConstitutionDate)
	if err != nil {
		return service.CompanyInput{}, err
	}
	return service.CompanyInput{
		Name:             r.Name,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		LandlinePhone:    r.LandlinePhone,
		RFC:              r.RFC,
		TaxResidence:     r.TaxResidence,
		ConstitutionDate: constitution,
		Archived:         r.Archived,
	}, nil
}

func (h *Handler) listCompanies(c *gin.Context) {
	onlyUnarchived := false
	if raw := c.Query("unarchived"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unarchived"})
			return
		}
		onlyUnarchived = parsed
	}

	companies, err := h.companies.ListCompanies(c.Request.Context(), onlyUnarchived)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *Handler) createCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid constitutionDate"})
		return
	}

	company, err := h.companies.CreateCompany(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *Handler) getCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companies.GetCompany(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) updateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid constitutionDate"})
		return
	}

	company, err := h.companies.UpdateCompany(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) toggleCompanyArchived(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companies.ToggleArchived(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) deleteCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companies.DeleteCompany(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
