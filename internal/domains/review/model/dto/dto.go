package dto

import (
	"atithi/internal/domains/review/model"
	"atithi/shared"
	"atithi/shared/constant"
	"atithi/shared/timezone"
)

type ReviewUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewRoomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewResponse struct {
	ID        string             `json:"id"`
	Rating    int                `json:"rating"`
	Comment   string             `json:"comment"`
	CreatedAt string             `json:"created_at"`
	User      ReviewUserResponse `json:"user"`
	Room      ReviewRoomResponse `json:"room"`
}

type GetReviewsResponse struct {
	Count   int              `json:"count"`
	Reviews []ReviewResponse `json:"reviews"`
}

func (res *GetReviewsResponse) FromModels(reviews []model.Review) {
	res.Count = len(reviews)

	res.Reviews = make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		res.Reviews = append(res.Reviews, ReviewResponse{
			ID:        shared.FormatID(review.ID),
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: timezone.Format(review.CreatedAt, constant.DateFormat),
			User: ReviewUserResponse{
				ID:   shared.FormatID(review.UserID),
				Name: review.UserName,
			},
			Room: ReviewRoomResponse{
				ID:   shared.FormatID(review.RoomID),
				Name: review.RoomName,
			},
		})
	}
}
