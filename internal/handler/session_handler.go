package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content-admin-api/internal/dto"
	"content-admin-api/internal/form"
	"content-admin-api/internal/response"
	"content-admin-api/internal/service"
	"content-admin-api/internal/session"
)

// SessionHandler exposes server-held edit sessions. Each session wraps a form
// controller (plus the step wizard for projects); every operation returns the
// full session view so the admin UI renders from a single payload.
type SessionHandler struct {
	sessions *session.Manager
	uploads  *service.ImageUploadService
}

func NewSessionHandler(sessions *session.Manager, uploads *service.ImageUploadService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		uploads:  uploads,
	}
}

// CreateCategorySession godoc
// @Summary      Open a category edit session
// @Description  Loads a category into a new server-held edit session
// @Tags         sessions
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Success      201 {object} response.SuccessResponse{data=dto.SessionResponse} "Session opened"
// @Failure      400 {object} response.ErrorResponse "Invalid id"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /sessions/categories/{categoryId} [post]
func (h *SessionHandler) CreateCategorySession(c *gin.Context) {
	id, ok := parseRecordID(c, "categoryId")
	if !ok {
		return
	}

	sess := h.sessions.CreateCategorySession(c.Request.Context(), id)

	sess.Lock()
	defer sess.Unlock()
	response.SendSuccess(c, http.StatusCreated, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// CreateProjectSession godoc
// @Summary      Open a project edit session
// @Description  Loads a project into a new server-held edit session with a step wizard
// @Tags         sessions
// @Produce      json
// @Param        projectId path int true "Project ID"
// @Success      201 {object} response.SuccessResponse{data=dto.SessionResponse} "Session opened"
// @Failure      400 {object} response.ErrorResponse "Invalid id"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Security     BearerAuth
// @Router       /sessions/projects/{projectId} [post]
func (h *SessionHandler) CreateProjectSession(c *gin.Context) {
	id, ok := parseRecordID(c, "projectId")
	if !ok {
		return
	}

	sess := h.sessions.CreateProjectSession(c.Request.Context(), id)

	sess.Lock()
	defer sess.Unlock()
	response.SendSuccess(c, http.StatusCreated, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// GetSession godoc
// @Summary      Read an edit session
// @Description  Returns the current state of an edit session
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()
	response.SendSuccess(c, http.StatusOK, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// CloseSession godoc
// @Summary      Close an edit session
// @Description  Discards a session and any unsubmitted draft changes
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      204 "Session closed"
// @Security     BearerAuth
// @Router       /sessions/{sessionId} [delete]
func (h *SessionHandler) CloseSession(c *gin.Context) {
	h.sessions.Delete(c.Param("sessionId"))
	response.SendNoContent(c)
}

// SetField godoc
// @Summary      Set a draft field
// @Description  Writes one text or toggle field of the session draft
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        request body dto.SetFieldRequest true "Field write"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Unknown field or invalid request"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/field [patch]
func (h *SessionHandler) SetField(c *gin.Context) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if !h.draftLoaded(c, sess) {
		return
	}

	var err error
	switch {
	case req.Value != nil:
		err = h.setText(sess, req.Field, *req.Value)
	case req.Enabled != nil:
		err = h.setBool(sess, req.Field, *req.Enabled)
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Either value or enabled is required")
		return
	}

	if err != nil {
		h.fieldError(c, req.Field, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// ApplyListOp godoc
// @Summary      Edit a list field
// @Description  Appends to, updates or removes from a list field of the draft
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        request body dto.ListOpRequest true "List operation"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Unknown field or invalid request"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/list [post]
func (h *SessionHandler) ApplyListOp(c *gin.Context) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	var req dto.ListOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if !h.draftLoaded(c, sess) {
		return
	}

	var err error
	switch req.Op {
	case "append":
		err = h.listAppend(sess, req.Field)
	case "update":
		if req.Index == nil || req.Value == nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "update requires index and value")
			return
		}
		err = h.listUpdateAt(sess, req.Field, *req.Index, *req.Value)
	case "remove":
		if req.Index == nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "remove requires index")
			return
		}
		err = h.listRemoveAt(sess, req.Field, *req.Index)
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unsupported list operation: "+req.Op)
		return
	}

	if err != nil {
		h.fieldError(c, req.Field, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// ApplyRelatedOp godoc
// @Summary      Edit related projects
// @Description  Adds or removes a related project reference on a project draft
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        request body dto.RelatedOpRequest true "Related project operation"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Invalid request or not a project session"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/related [post]
func (h *SessionHandler) ApplyRelatedOp(c *gin.Context) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	var req dto.RelatedOpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Project == nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Related projects apply to project sessions only")
		return
	}
	if !h.draftLoaded(c, sess) {
		return
	}

	switch req.Op {
	case "add":
		if req.ProjectID == nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "add requires projectId")
			return
		}
		// A full list raises a banner and leaves the draft unchanged;
		// the view carries the outcome either way
		sess.Project.RelatedAdd(*req.ProjectID)
	case "remove":
		if req.Index == nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "remove requires index")
			return
		}
		if err := sess.Project.RelatedRemoveAt(*req.Index); err != nil {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Index out of range for related projects")
			return
		}
	default:
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unsupported related-project operation: "+req.Op)
		return
	}

	response.SendSuccess(c, http.StatusOK, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// WizardNext godoc
// @Summary      Advance the wizard
// @Description  Moves a project session to the next step after validating the current one
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Not a project session"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/wizard/next [post]
func (h *SessionHandler) WizardNext(c *gin.Context) {
	h.wizardOp(c, func(w *form.Wizard) { w.Next() })
}

// WizardPrevious godoc
// @Summary      Step the wizard back
// @Description  Moves a project session one step back, without validation
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Not a project session"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/wizard/previous [post]
func (h *SessionHandler) WizardPrevious(c *gin.Context) {
	h.wizardOp(c, func(w *form.Wizard) { w.Previous() })
}

// WizardGoToStep godoc
// @Summary      Jump to a wizard step
// @Description  Moves a project session directly to a step, without validation
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        request body dto.GoToStepRequest true "Target step"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Invalid step or not a project session"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/wizard/step [post]
func (h *SessionHandler) WizardGoToStep(c *gin.Context) {
	var req dto.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	h.wizardOp(c, func(w *form.Wizard) { w.GoToStep(req.Step) })
}

// Submit godoc
// @Summary      Submit the session draft
// @Description  Validates and persists the draft; success schedules a redirect
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Category != nil {
		sess.Category.Submit(c.Request.Context())
	} else {
		sess.Wizard.Submit(c.Request.Context())
	}

	response.SendSuccess(c, http.StatusOK, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

// UploadImage godoc
// @Summary      Upload an editor image
// @Description  Uploads an image into one draft field; only image/* files up to 5 MiB are accepted
// @Tags         sessions
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Param        field formData string true "Target draft field"
// @Param        file formData file true "Image file"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionResponse} "Session"
// @Failure      400 {object} response.ErrorResponse "Missing file or field"
// @Failure      404 {object} response.ErrorResponse "Session not found or expired"
// @Security     BearerAuth
// @Router       /sessions/{sessionId}/upload [post]
func (h *SessionHandler) UploadImage(c *gin.Context) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	targetField := c.PostForm("field")
	if targetField == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "field form value is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "file form value is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Uploaded file could not be read")
		return
	}
	defer src.Close()

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	file := form.File{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        src,
	}

	sess.Lock()
	defer sess.Unlock()

	if !h.draftLoaded(c, sess) {
		return
	}

	uploader := h.uploads.Uploader(string(sess.EntityType), targetField, auth.UserID.String())

	// The adapter owns the guards and banners; it needs the session's form
	// controller to write the stored URL back into the draft
	var adapter *form.UploadAdapter
	if sess.Category != nil {
		adapter = form.NewUploadAdapter(uploader, sess.Category)
	} else {
		adapter = form.NewUploadAdapter(uploader, sess.Project)
	}

	adapter.Upload(c.Request.Context(), file, targetField)

	response.SendSuccess(c, http.StatusOK, h.view(sess, adapter.State()))
}

// GetUpload godoc
// @Summary      Get an upload record
// @Description  Fetches a stored image upload with its public URL
// @Tags         sessions
// @Produce      json
// @Param        uploadId path int true "Upload ID"
// @Success      200 {object} response.SuccessResponse{data=dto.UploadResponse} "Upload"
// @Failure      400 {object} response.ErrorResponse "Invalid upload ID"
// @Failure      404 {object} response.ErrorResponse "Upload not found"
// @Security     BearerAuth
// @Router       /uploads/{uploadId} [get]
func (h *SessionHandler) GetUpload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("uploadId"), 10, 32)
	if err != nil || id == 0 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid upload ID")
		return
	}

	upload, svcErr := h.uploads.GetUpload(c.Request.Context(), uint(id))
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.SendSuccess(c, http.StatusOK, upload)
}

// draftLoaded rejects field edits on sessions whose record never loaded.
// Callers must hold the session lock.
func (h *SessionHandler) draftLoaded(c *gin.Context, sess *session.Session) bool {
	var loaded bool
	if sess.Category != nil {
		loaded = sess.Category.Draft() != nil
	} else {
		loaded = sess.Project.Draft() != nil
	}
	if !loaded {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Session record failed to load")
	}
	return loaded
}

func (h *SessionHandler) getSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := h.sessions.Get(c.Param("sessionId"))
	if !ok {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Session not found or expired")
		return nil, false
	}
	return sess, true
}

func (h *SessionHandler) wizardOp(c *gin.Context, op func(*form.Wizard)) {
	sess, ok := h.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Wizard == nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "The wizard applies to project sessions only")
		return
	}

	op(sess.Wizard)

	response.SendSuccess(c, http.StatusOK, h.view(sess, form.UploadState{Phase: form.UploadIdle}))
}

func (h *SessionHandler) fieldError(c *gin.Context, field string, err error) {
	if form.ErrUnknownField(err) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown field: "+field)
		return
	}
	if form.ErrIndexOutOfRange(err) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Index out of range for field: "+field)
		return
	}
	response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
}

func (h *SessionHandler) setText(sess *session.Session, field, value string) error {
	if sess.Category != nil {
		return sess.Category.SetField(field, value)
	}
	return sess.Project.SetField(field, value)
}

func (h *SessionHandler) setBool(sess *session.Session, field string, value bool) error {
	if sess.Category != nil {
		return sess.Category.SetBool(field, value)
	}
	return sess.Project.SetBool(field, value)
}

func (h *SessionHandler) listAppend(sess *session.Session, field string) error {
	if sess.Category != nil {
		return sess.Category.ListAppend(field)
	}
	return sess.Project.ListAppend(field)
}

func (h *SessionHandler) listUpdateAt(sess *session.Session, field string, i int, value string) error {
	if sess.Category != nil {
		return sess.Category.ListUpdateAt(field, i, value)
	}
	return sess.Project.ListUpdateAt(field, i, value)
}

func (h *SessionHandler) listRemoveAt(sess *session.Session, field string, i int) error {
	if sess.Category != nil {
		return sess.Category.ListRemoveAt(field, i)
	}
	return sess.Project.ListRemoveAt(field, i)
}

// view builds the full session payload. Callers must hold the session lock.
func (h *SessionHandler) view(sess *session.Session, upload form.UploadState) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		SessionID:  sess.ID,
		EntityType: string(sess.EntityType),
		RecordID:   sess.RecordID,
		Upload:     upload,
		ExpiresAt:  sess.ExpiresAt,
	}

	if sess.Category != nil {
		f := sess.Category
		resp.State = string(f.State())
		resp.LoadError = f.LoadError()
		if f.Draft() != nil {
			resp.Draft = f.Draft()
		}
		resp.Notice = dto.ToNoticeView(f.Notices().Active())
		resp.RedirectTo = f.RedirectTarget()
	} else {
		f := sess.Project
		resp.State = string(f.State())
		resp.LoadError = f.LoadError()
		if f.Draft() != nil {
			resp.Draft = f.Draft()
		}
		resp.Notice = dto.ToNoticeView(f.Notices().Active())
		resp.RedirectTo = f.RedirectTarget()
		resp.Wizard = &dto.WizardView{
			CurrentStep:    sess.Wizard.Current(),
			CompletedSteps: sess.Wizard.CompletedSteps(),
		}
	}

	if resp.RedirectTo != "" {
		resp.RedirectIn = form.RedirectDelay.Milliseconds()
	}

	return resp
}
