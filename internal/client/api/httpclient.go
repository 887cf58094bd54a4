package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/azhukov/campus-navigator/internal/client/models"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the backend at baseURL (scheme + host,
// no trailing slash required). timeout bounds every request end to end;
// zero means no client-side limit beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// messageBody is the error envelope every backend endpoint uses.
type messageBody struct {
	Message string `json:"message"`
}

// do performs one request. body is JSON-encoded when non-nil; out, when
// non-nil, receives the decoded 2xx response. Non-2xx statuses and
// transport failures come back as sentinel errors (see errors.go).
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts, DNS failures, refused connections, canceled contexts:
		// all are transient from the session's point of view.
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrServer, err)
		}
	}
	return nil
}

// statusError maps a non-2xx response to a sentinel, keeping the backend's
// message in the error text.
func statusError(status int, raw []byte) error {
	var mb messageBody
	_ = json.Unmarshal(raw, &mb)
	msg := mb.Message
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	var base error
	switch status {
	case http.StatusUnauthorized:
		base = ErrUnauthorized
	case http.StatusForbidden:
		base = ErrForbidden
	case http.StatusBadRequest:
		base = ErrValidation
	case http.StatusNotFound:
		base = ErrNotFound
	default:
		base = ErrServer
	}
	return fmt.Errorf("%w: %s", base, msg)
}

// Ping checks backend reachability against the unauthenticated test endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/test", "", nil, nil)
}

// ---- auth ----

type credentialsDTO struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Credentials, error) {
	var dto credentialsDTO
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &dto); err != nil {
		return nil, err
	}
	if dto.Token == "" {
		return nil, fmt.Errorf("%w: no token in login response", ErrServer)
	}
	return &Credentials{Token: dto.Token, User: dto.User}, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*Credentials, error) {
	var dto credentialsDTO
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", body, &dto); err != nil {
		return nil, err
	}
	if dto.Token == "" {
		return nil, fmt.Errorf("%w: no token in register response", ErrServer)
	}
	// User is optional here: some backend versions return only the token.
	return &Credentials{Token: strings.TrimSpace(dto.Token), User: dto.User}, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("%w: no user in identity response", ErrServer)
	}
	return out.User, nil
}

func (c *HTTPClient) SetRole(ctx context.Context, token string, role models.Role, reason, managerType string) (*models.User, error) {
	body := map[string]string{
		"role":         string(role),
		"reason":       reason,
		"manager_type": managerType,
	}
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/set-role", token, body, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// ---- facilities ----

// facilityDTO unifies the three list payloads; open/available and the
// lab-only fields are optional per kind.
type facilityDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Building         string `json:"building"`
	RoomNumber       string `json:"room_number"`
	MaxCapacity      int    `json:"max_capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
	IsOpen           *bool  `json:"is_open"`
	IsAvailable      *bool  `json:"is_available"`
	EquipmentStatus  string `json:"equipment_status"`
}

func (d facilityDTO) toModel(kind models.FacilityKind) models.Facility {
	open := true
	if d.IsOpen != nil {
		open = *d.IsOpen
	} else if d.IsAvailable != nil {
		open = *d.IsAvailable
	}
	return models.Facility{
		ID:               d.ID,
		Kind:             kind,
		Name:             d.Name,
		Building:         d.Building,
		RoomNumber:       d.RoomNumber,
		MaxCapacity:      d.MaxCapacity,
		CurrentOccupancy: d.CurrentOccupancy,
		Open:             open,
		EquipmentStatus:  d.EquipmentStatus,
	}
}

// kindSpec is the endpoint/field mapping that lets one implementation serve
// all three occupancy panels.
type kindSpec struct {
	listPath   string
	listKey    string
	openField  string
	updatePath func(id int64) string
}

var kindSpecs = map[models.FacilityKind]kindSpec{
	models.FacilityLibrary: {
		listPath:  "/api/libraries/list",
		listKey:   "libraries",
		openField: "is_open",
		// the library panel updates through a single shared endpoint
		updatePath: func(int64) string { return "/api/library/update" },
	},
	models.FacilityLab: {
		listPath:   "/api/labs/list",
		listKey:    "labs",
		openField:  "is_available",
		updatePath: func(id int64) string { return fmt.Sprintf("/api/labs/%d/update", id) },
	},
	models.FacilityClassroom: {
		listPath:   "/api/classrooms/list",
		listKey:    "classrooms",
		openField:  "is_available",
		updatePath: func(id int64) string { return fmt.Sprintf("/api/classrooms/%d/update", id) },
	},
}

func specFor(kind models.FacilityKind) (kindSpec, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return kindSpec{}, fmt.Errorf("%w: unknown facility kind %q", ErrValidation, kind)
	}
	return spec, nil
}

func (c *HTTPClient) ListFacilities(ctx context.Context, token string, kind models.FacilityKind) ([]models.Facility, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	var out map[string][]facilityDTO
	if err := c.do(ctx, http.MethodGet, spec.listPath, token, nil, &out); err != nil {
		return nil, err
	}
	dtos := out[spec.listKey]
	facilities := make([]models.Facility, len(dtos))
	for i, d := range dtos {
		facilities[i] = d.toModel(kind)
	}
	return facilities, nil
}

func (c *HTTPClient) UpdateFacility(ctx context.Context, token string, kind models.FacilityKind, id int64, upd models.OccupancyUpdate) (string, error) {
	spec, err := specFor(kind)
	if err != nil {
		return "", err
	}
	body := map[string]any{
		"current_occupancy": upd.CurrentOccupancy,
		spec.openField:      upd.Open,
	}
	if kind == models.FacilityLibrary {
		body["library_id"] = id
	}
	var out messageBody
	if err := c.do(ctx, http.MethodPost, spec.updatePath(id), token, body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

type updateRequestDTO struct {
	ID               int64     `json:"id"`
	LibraryID        *int64    `json:"library_id"`
	LibraryName      string    `json:"library_name"`
	LabID            *int64    `json:"lab_id"`
	LabName          string    `json:"lab_name"`
	RequestedBy      string    `json:"requested_by"`
	CurrentOccupancy int       `json:"requested_current_occupancy"`
	IsOpen           *bool     `json:"requested_is_open"`
	IsAvailable      *bool     `json:"requested_is_available"`
	CreatedAt        time.Time `json:"created_at"`
}

func (d updateRequestDTO) toModel(kind models.FacilityKind) models.UpdateRequest {
	req := models.UpdateRequest{
		ID:               d.ID,
		Kind:             kind,
		RequestedBy:      d.RequestedBy,
		CurrentOccupancy: d.CurrentOccupancy,
		Status:           models.RequestPending,
		CreatedAt:        d.CreatedAt,
	}
	switch kind {
	case models.FacilityLibrary:
		if d.LibraryID != nil {
			req.FacilityID = *d.LibraryID
		}
		req.FacilityName = d.LibraryName
		if d.IsOpen != nil {
			req.Open = *d.IsOpen
		}
	case models.FacilityLab:
		if d.LabID != nil {
			req.FacilityID = *d.LabID
		}
		req.FacilityName = d.LabName
		if d.IsAvailable != nil {
			req.Open = *d.IsAvailable
		}
	}
	return req
}

func (c *HTTPClient) PendingUpdates(ctx context.Context, token string) ([]models.UpdateRequest, error) {
	var out struct {
		LibraryRequests []updateRequestDTO `json:"library_requests"`
		LabRequests     []updateRequestDTO `json:"lab_requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/updates/pending", token, nil, &out); err != nil {
		return nil, err
	}
	reqs := make([]models.UpdateRequest, 0, len(out.LibraryRequests)+len(out.LabRequests))
	for _, d := range out.LibraryRequests {
		reqs = append(reqs, d.toModel(models.FacilityLibrary))
	}
	for _, d := range out.LabRequests {
		reqs = append(reqs, d.toModel(models.FacilityLab))
	}
	return reqs, nil
}

func (c *HTTPClient) ResolveUpdate(ctx context.Context, token string, kind models.FacilityKind, id int64, approve bool, reason string) error {
	action := "approve"
	var body any
	if !approve {
		action = "reject"
		body = map[string]string{"reason": reason}
	}
	path := fmt.Sprintf("/api/updates/%s/%d/%s", kind, id, action)
	return c.do(ctx, http.MethodPost, path, token, body, nil)
}

// ---- faults ----

func (c *HTTPClient) CreateFault(ctx context.Context, token string, draft models.FaultDraft) (*models.Fault, error) {
	var out struct {
		Fault *models.Fault `json:"fault"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/faults/create", token, draft, &out); err != nil {
		return nil, err
	}
	if out.Fault == nil {
		return nil, fmt.Errorf("%w: no fault in response", ErrServer)
	}
	return out.Fault, nil
}

func (c *HTTPClient) ListFaults(ctx context.Context, token string) ([]models.Fault, error) {
	var out struct {
		Faults []models.Fault `json:"faults"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/faults/list", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Faults, nil
}

func (c *HTTPClient) UpdateFault(ctx context.Context, token string, id int64, patch models.FaultPatch) (*models.Fault, error) {
	var out struct {
		Fault *models.Fault `json:"fault"`
	}
	path := fmt.Sprintf("/api/faults/%d/update", id)
	if err := c.do(ctx, http.MethodPost, path, token, patch, &out); err != nil {
		return nil, err
	}
	if out.Fault == nil {
		return nil, fmt.Errorf("%w: no fault in response", ErrServer)
	}
	return out.Fault, nil
}

// ---- room and role requests ----

type roomRequestDTO struct {
	ID                int64                `json:"id"`
	RequestedBy       string               `json:"requested_by"`
	RoomType          models.FacilityKind  `json:"room_type"`
	ClassroomID       *int64               `json:"classroom_id"`
	ClassroomName     string               `json:"classroom_name"`
	LabID             *int64               `json:"lab_id"`
	LabName           string               `json:"lab_name"`
	Purpose           string               `json:"purpose"`
	ExpectedAttendees int                  `json:"expected_attendees"`
	Date              string               `json:"requested_date"`
	StartTime         string               `json:"start_time"`
	EndTime           string               `json:"end_time"`
	Status            models.RequestStatus `json:"status"`
	ApprovedBy        string               `json:"approved_by"`
	CreatedAt         time.Time            `json:"created_at"`
}

func (d roomRequestDTO) toModel() models.RoomRequest {
	req := models.RoomRequest{
		ID:                d.ID,
		RequestedBy:       d.RequestedBy,
		RoomType:          d.RoomType,
		Purpose:           d.Purpose,
		ExpectedAttendees: d.ExpectedAttendees,
		Date:              d.Date,
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		Status:            d.Status,
		ApprovedBy:        d.ApprovedBy,
		CreatedAt:         d.CreatedAt,
	}
	if d.ClassroomID != nil {
		req.RoomID = *d.ClassroomID
		req.RoomName = d.ClassroomName
	} else if d.LabID != nil {
		req.RoomID = *d.LabID
		req.RoomName = d.LabName
	}
	return req
}

func (c *HTTPClient) CreateRoomRequest(ctx context.Context, token string, draft models.RoomRequestDraft) (*models.RoomRequest, error) {
	var out struct {
		Request *models.RoomRequest `json:"request"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/room-requests/create", token, draft, &out); err != nil {
		return nil, err
	}
	if out.Request == nil {
		return nil, fmt.Errorf("%w: no request in response", ErrServer)
	}
	return out.Request, nil
}

func (c *HTTPClient) ListRoomRequests(ctx context.Context, token string) ([]models.RoomRequest, error) {
	var out struct {
		Requests []roomRequestDTO `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/room-requests/list", token, nil, &out); err != nil {
		return nil, err
	}
	reqs := make([]models.RoomRequest, len(out.Requests))
	for i, d := range out.Requests {
		reqs[i] = d.toModel()
	}
	return reqs, nil
}

func (c *HTTPClient) ResolveRoomRequest(ctx context.Context, token string, id int64, approve bool, reason string) error {
	return c.resolve(ctx, token, fmt.Sprintf("/api/room-requests/%d", id), approve, reason)
}

func (c *HTTPClient) ListRoleRequests(ctx context.Context, token string) ([]models.RoleRequest, error) {
	var out struct {
		Requests []models.RoleRequest `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/role-requests", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (c *HTTPClient) ResolveRoleRequest(ctx context.Context, token string, id int64, approve bool, reason string) error {
	return c.resolve(ctx, token, fmt.Sprintf("/api/admin/role-requests/%d", id), approve, reason)
}

func (c *HTTPClient) resolve(ctx context.Context, token, base string, approve bool, reason string) error {
	action := "approve"
	var body any
	if !approve {
		action = "reject"
		body = map[string]string{"reason": reason}
	}
	return c.do(ctx, http.MethodPost, base+"/"+action, token, body, nil)
}

// ---- admin console and reports ----

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.DirectoryUser, error) {
	var out struct {
		Users []models.DirectoryUser `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *HTTPClient) Stats(ctx context.Context, token string) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RecurringIssues(ctx context.Context, token string) (*models.RecurringReport, error) {
	var out struct {
		Faults    []models.RecurringFault    `json:"recurring_faults"`
		Overloads []models.RecurringOverload `json:"recurring_overloads"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reports/recurring", token, nil, &out); err != nil {
		return nil, err
	}
	return &models.RecurringReport{Faults: out.Faults, Overloads: out.Overloads}, nil
}

// ---- notifications ----

func (c *HTTPClient) ListNotifications(ctx context.Context, token string) ([]models.Notification, error) {
	var out struct {
		Notifications []models.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/notifications/list", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Notifications, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", id), token, nil, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/read-all", token, nil, nil)
}

var _ Client = (*HTTPClient)(nil)
