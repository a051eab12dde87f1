package room

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/room/model"
	"atithi/internal/domains/room/model/dto"
	"atithi/internal/domains/room/service"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with images uploaded as multipart form data.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param room_name formData string true "Room name"
// @Param room_type formData string true "Room type"
// @Param room_number formData string true "Room number"
// @Param price formData number true "Price per night"
// @Param total_rooms formData integer false "Number of physical rooms"
// @Param guests formData integer false "Guest capacity"
// @Param room_size formData string false "Room size"
// @Param description formData string false "Description"
// @Param amenities formData []string false "Amenities"
// @Param images formData file false "Room images"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.CreateRoomRequest{
		RoomName:    r.FormValue(model.FieldRoomName),
		RoomType:    r.FormValue(model.FieldRoomType),
		RoomNumber:  r.FormValue(model.FieldRoomNumber),
		RoomSize:    r.FormValue(model.FieldRoomSize),
		Description: r.FormValue(model.FieldDescription),
		Amenities:   r.Form[model.FieldAmenities],
	}

	if priceStr := r.FormValue(model.FieldPrice); priceStr != "" {
		if price, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.Price = price
		}
	}

	if totalStr := r.FormValue(model.FieldTotalRooms); totalStr != "" {
		if total, err := shared.ConvertStringToInt(totalStr); err == nil {
			req.TotalRooms = total
		}
	}

	if guestsStr := r.FormValue(model.FieldGuests); guestsStr != "" {
		if guests, err := shared.ConvertStringToInt(guestsStr); err == nil {
			req.Guests = guests
		}
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	images := make([]service.RoomImage, 0)

	if r.MultipartForm != nil {
		for _, fileHeader := range r.MultipartForm.File[constant.FormFile] {
			file, err := fileHeader.Open()
			if err != nil {
				scope.TraceError(err)
				log.Error().Err(err).Msg("failed to open uploaded image")

				response.WithError(w, err)

				return
			}
			defer file.Close()

			images = append(images, service.RoomImage{File: file, Header: fileHeader})
		}
	}

	if err := handler.service.Create(ctx, req, images); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Room created successfully by admin " + admin)

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_name query string false "Filter by room name"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldRoomName),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomType,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldRoomType),
				Table:    model.TableName,
			},
		},
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room id")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the mutable details of an existing room. Room number and total rooms cannot change.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Room update payload"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Room updated successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room and its uploaded images.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room id")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Room deleted successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
