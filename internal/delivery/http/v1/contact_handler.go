package v1

import (
	"net/http"
	"strconv"

	"go-contact-manager/internal/delivery/http/response"
	"go-contact-manager/internal/domain"
	"go-contact-manager/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(r *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	contacts := r.Group("/contacts")
	{
		contacts.GET("", handler.List)
		contacts.GET("/all", handler.ListAll)
		contacts.GET("/:id", handler.GetByID)
		contacts.POST("", handler.Create)
		contacts.PATCH("/:id", handler.Update)
		contacts.PATCH("/:id/fields/:field", handler.UpdateField)
		contacts.DELETE("/:id", handler.Delete)
	}
}

// UpdateFieldRequest carries the raw value for a single-field update.
// The value is always text; the service converts it per field token.
type UpdateFieldRequest struct {
	Value string `json:"value"`
}

// List godoc
// @Summary      List contacts (paged)
// @Description  Get one page of contacts ordered by name
// @Tags         contacts
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response{data=domain.PagedResult}
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	var req domain.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid pagination parameters"))
		return
	}

	result, err := h.contactUC.GetPaged(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact list", result)
}

// ListAll godoc
// @Summary      List all contacts
// @Description  Get every contact without paging
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ContactDTO}
// @Router       /contacts/all [get]
func (h *ContactHandler) ListAll(c *gin.Context) {
	contacts, err := h.contactUC.GetAll(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact list", contacts)
}

// GetByID godoc
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  response.Response{data=domain.ContactDTO}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	contact, err := h.contactUC.GetByID(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact details", contact)
}

// Create godoc
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactDTO  true  "Contact JSON"
// @Success      201  {object}  response.Response{data=domain.ContactDTO}
// @Failure      400  {object}  response.Response
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var dto domain.ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contactUC.Create(c, &dto); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Contact created", dto)
}

// Update godoc
// @Summary      Update a contact
// @Description  Overwrite all business fields of an existing contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id       path      int                true  "Contact ID"
// @Param        contact  body      domain.ContactDTO  true  "Contact JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [patch]
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var dto domain.ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contactUC.Update(c, id, &dto); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact updated", nil)
}

// UpdateField godoc
// @Summary      Update a single contact field
// @Description  Set one field (name, birth_date, is_married, phone_number, salary) from its text value
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Contact ID"
// @Param        field  path      string              true  "Field token"
// @Param        value  body      UpdateFieldRequest  true  "New value"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id}/fields/{field} [patch]
func (h *ContactHandler) UpdateField(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contactUC.UpdateField(c, id, c.Param("field"), req.Value); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact updated", nil)
}

// Delete godoc
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.contactUC.Delete(c, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact deleted", nil)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
