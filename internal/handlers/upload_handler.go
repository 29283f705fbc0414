package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/httperr"
	"github.com/cutmodel/model-match/internal/media"
	"github.com/cutmodel/model-match/internal/models"
)

const maxPhotoSize = 10 << 20 // 10 MB

type UploadHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewUploadHandler(db *gorm.DB, uploader *media.Uploader) *UploadHandler {
	return &UploadHandler{db: db, uploader: uploader}
}

// processPhoto reads the multipart "photo" field, converts it to webp
// and stores it. Returns the public URL.
func (h *UploadHandler) processPhoto(c *gin.Context, prefix string) (string, bool) {
	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "photo_required", "A photo file is required.")
		return "", false
	}
	if file.Size > maxPhotoSize {
		httperr.BadRequest(c, "photo_too_large", "The photo exceeds the 10MB limit.")
		return "", false
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Failed to read the uploaded file.")
		return "", false
	}
	defer src.Close()

	data, err := media.EncodeWebP(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is not a valid image.")
		return "", false
	}

	url, err := h.uploader.UploadWebP(c.Request.Context(), prefix, data)
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Failed to store the photo.")
		return "", false
	}

	return url, true
}

func (h *UploadHandler) UploadStudentPhoto(c *gin.Context) {
	student, ok := studentProfile(h.db, c)
	if !ok {
		return
	}

	url, ok := h.processPhoto(c, "students")
	if !ok {
		return
	}

	student.PhotoURL = url
	if err := h.db.Save(student).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update the profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

func (h *UploadHandler) UploadSalonPhoto(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	url, ok := h.processPhoto(c, "salons")
	if !ok {
		return
	}

	salon.PhotoURL = url
	if err := h.db.Save(salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Failed to update the profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

func (h *UploadHandler) UploadListingPhoto(c *gin.Context) {
	salon, ok := salonProfile(h.db, c)
	if !ok {
		return
	}

	listingID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var listing models.Listing
	err := h.db.
		Where("id = ? AND salon_id = ?", listingID, salon.ID).
		First(&listing).Error
	if err != nil {
		httperr.NotFound(c, "listing_not_found", "Listing not found.")
		return
	}

	url, ok := h.processPhoto(c, "listings")
	if !ok {
		return
	}

	listing.PhotoURL = url
	if err := h.db.Save(&listing).Error; err != nil {
		httperr.Internal(c, "failed_to_update_listing", "Failed to update the listing.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
