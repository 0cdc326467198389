package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vahanscan/vahanscan/storage"
	"github.com/vahanscan/vahanscan/web/middleware"
	"github.com/vahanscan/vahanscan/web/service"

	"github.com/gin-gonic/gin"
)

// AssessController handles damage detection and the per-user history. All of
// its routes sit behind the session auth middleware; the owner id always
// comes from the resolved login user.
type AssessController struct {
	assessmentService *service.AssessmentService
	uploadService     *service.UploadService
}

// NewAssessController creates the controller and registers its routes.
func NewAssessController(g *gin.RouterGroup, assessmentService *service.AssessmentService, uploadService *service.UploadService) *AssessController {
	a := &AssessController{
		assessmentService: assessmentService,
		uploadService:     uploadService,
	}
	a.initRouter(g)
	return a
}

func (a *AssessController) initRouter(g *gin.RouterGroup) {
	g.POST("/detect", a.detect)
	g.GET("/history", a.history)
	g.DELETE("/history/:id", a.deleteHistory)
}

// detect stores the uploaded photo and appends a simulated assessment to the
// caller's history.
func (a *AssessController) detect(c *gin.Context) {
	user := middleware.GetLoginUser(c)

	fileHeader, err := c.FormFile("carImage")
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "no image file uploaded")
		return
	}

	fileName, err := a.uploadService.Save(fileHeader)
	if errors.Is(err, service.ErrPayloadTooLarge) {
		pureJsonMsg(c, http.StatusRequestEntityTooLarge, false, "please upload an image smaller than 5MB")
		return
	} else if errors.Is(err, service.ErrUnsupportedMedia) {
		pureJsonMsg(c, http.StatusUnsupportedMediaType, false, "only image files are allowed")
		return
	} else if err != nil {
		jsonMsg(c, "store upload", err)
		return
	}

	record, err := a.assessmentService.Detect(user.Id, fileName)
	if err != nil {
		a.uploadService.Remove(fileName)
		jsonMsg(c, "run detection", err)
		return
	}

	jsonMsgObj(c, "damage detected successfully", record, nil)
}

// history lists the caller's past assessments, newest first.
func (a *AssessController) history(c *gin.Context) {
	user := middleware.GetLoginUser(c)

	records, err := a.assessmentService.History(user.Id)
	if err != nil {
		jsonMsg(c, "fetch history", err)
		return
	}
	jsonObj(c, records, nil)
}

// deleteHistory removes one record from the caller's history. Records of
// other users look exactly like missing ones.
func (a *AssessController) deleteHistory(c *gin.Context) {
	user := middleware.GetLoginUser(c)

	recordId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid record id")
		return
	}

	err = a.assessmentService.Delete(user.Id, recordId)
	if errors.Is(err, storage.ErrNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, "record not found")
		return
	} else if err != nil {
		jsonMsg(c, "delete record", err)
		return
	}
	jsonMsg(c, "record deleted successfully", nil)
}
