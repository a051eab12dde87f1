package dto

import (
	"atithi/internal/domains/room/model"
	"atithi/shared"
	gDto "atithi/shared/dto"

	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	RoomName    string   `json:"room_name"   validate:"required"`
	RoomType    string   `json:"room_type"   validate:"required"`
	RoomNumber  string   `json:"room_number" validate:"required"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	TotalRooms  int      `json:"total_rooms" validate:"omitempty,gte=1"`
	Guests      int      `json:"guests"      validate:"omitempty,gte=1"`
	RoomSize    string   `json:"room_size"   validate:"omitempty"`
	Description string   `json:"description" validate:"omitempty"`
	Amenities   []string `json:"amenities"   validate:"omitempty"`
}

func (req *CreateRoomRequest) ToModel(id int64, imageURLs []string) model.Room {
	totalRooms := req.TotalRooms
	if totalRooms <= 0 {
		totalRooms = 1
	}

	return model.Room{
		ID:          id,
		RoomName:    req.RoomName,
		RoomType:    req.RoomType,
		RoomNumber:  req.RoomNumber,
		Price:       req.Price,
		TotalRooms:  totalRooms,
		Guests:      req.Guests,
		RoomSize:    req.RoomSize,
		Description: req.Description,
		ImageURLs:   imageURLs,
		Amenities:   req.Amenities,
	}
}

// UpdateRoomRequest deliberately has no room_number or total_rooms field:
// both are immutable once a room exists.
type UpdateRoomRequest struct {
	RoomName    *string         `json:"room_name"   db:"room_name"   validate:"omitempty"`
	RoomType    *string         `json:"room_type"   db:"room_type"   validate:"omitempty"`
	Price       *float64        `json:"price"       db:"price"       validate:"omitempty,gt=0"`
	Guests      *int            `json:"guests"      db:"guests"      validate:"omitempty,gte=1"`
	RoomSize    *string         `json:"room_size"   db:"room_size"   validate:"omitempty"`
	Description *string         `json:"description" db:"description" validate:"omitempty"`
	Amenities   *pq.StringArray `json:"amenities"   db:"amenities"   validate:"omitempty"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	RoomName    string   `json:"room_name"`
	RoomType    string   `json:"room_type"`
	RoomNumber  string   `json:"room_number"`
	Price       float64  `json:"price"`
	TotalRooms  int      `json:"total_rooms"`
	Guests      int      `json:"guests"`
	RoomSize    string   `json:"room_size"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
	Amenities   []string `json:"amenities"`
	gDto.Metadata
}

func (res *RoomResponse) FromModel(room model.Room) {
	res.ID = shared.FormatID(room.ID)
	res.RoomName = room.RoomName
	res.RoomType = room.RoomType
	res.RoomNumber = room.RoomNumber
	res.Price = room.Price
	res.TotalRooms = room.TotalRooms
	res.Guests = room.Guests
	res.RoomSize = room.RoomSize
	res.Description = room.Description
	res.ImageURLs = room.ImageURLs
	res.Amenities = room.Amenities
	res.Metadata.FromModel(room.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	Total     int            `json:"total"`
	TotalPage int            `json:"total_page"`
}

func (res *GetRoomsResponse) FromModels(rooms []model.Room, total, limit int) {
	res.Rooms = make([]RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		roomRes := RoomResponse{}
		roomRes.FromModel(room)
		res.Rooms = append(res.Rooms, roomRes)
	}

	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, limit)
}
