package v1

import (
	"net/http"

	"go-contact-manager/internal/delivery/http/response"
	"go-contact-manager/internal/domain"
	"go-contact-manager/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	importUC domain.ImportUsecase
}

func NewImportHandler(r *gin.RouterGroup, importUC domain.ImportUsecase, limiter gin.HandlerFunc) {
	handler := &ImportHandler{importUC: importUC}

	r.POST("/contacts/import", limiter, handler.Import)
}

// Import godoc
// @Summary      Bulk-import contacts from CSV
// @Description  Upload a comma-separated file with a header row; valid rows are persisted, rejected rows are reported per row
// @Tags         contacts
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      200  {object}  response.Response{data=domain.ImportResult}
// @Failure      400  {object}  response.Response
// @Router       /contacts/import [post]
func (h *ImportHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("File is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.importUC.ImportContacts(c, file)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Import finished", result)
}
