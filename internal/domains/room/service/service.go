package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"atithi/config"
	"atithi/infras/otel"
	"atithi/infras/s3"
	"atithi/internal/domains/room/model"
	"atithi/internal/domains/room/model/dto"
	"atithi/internal/domains/room/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/idgen"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type RoomImage struct {
	File   multipart.File
	Header *multipart.FileHeader
}

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest, images []RoomImage) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Room
	cfg     *config.Config
	cache   cache.RedisCache
	storage s3.S3
	idgen   idgen.Generator
	otel    otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, storage s3.S3, idgen idgen.Generator, otel otel.Otel) Room {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		idgen:   idgen,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest, images []RoomImage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	numberFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomNumber,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, numberFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room number is taken")

		return fmt.Errorf("failed to check if room number is taken: %w", err)
	}

	if exists {
		return failure.Conflict("room number already in use") //nolint:wrapcheck
	}

	imageURLs, err := s.uploadImages(ctx, images)
	if err != nil {
		return err
	}

	room := req.ToModel(s.idgen.NextID(), imageURLs)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) uploadImages(ctx context.Context, images []RoomImage) (urls []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".uploadImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	urls = make([]string, 0, len(images))

	for _, image := range images {
		fileName := uuid.New().String() + path.Ext(image.Header.Filename)

		url, err := s.storage.UploadFile(ctx, s.cfg.External.S3.RoomDir, image.File, image.Header, fileName)
		if err != nil {
			log.Error().Err(err).Str("file", image.Header.Filename).Msg("failed to upload room image")

			return nil, fmt.Errorf("failed to upload room image: %w", err)
		}

		urls = append(urls, url)
	}

	return urls, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, shared.FormatID(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) <= 1 {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		for _, url := range room.ImageURLs {
			objectName := s.storage.GetObjectNameFromURL(url)
			if objectName == constant.Empty {
				continue
			}

			if err := s.storage.DeleteFile(c, constant.Empty, objectName); err != nil {
				log.Error().Err(err).Str("object", objectName).Msg("failed to delete room image")
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, shared.FormatID(id))); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}
