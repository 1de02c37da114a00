package domain

type SubmitReportRequest struct {
	Type         string   `json:"type" validate:"required,hazard_type"`
	Description  string   `json:"description" validate:"required,min=10,max=500"`
	Location     Location `json:"location" validate:"required"`
	RadiusM      float64  `json:"radius" validate:"omitempty,gt=0,max=500"`
	DurationDays int      `json:"duration" validate:"required,min=1,max=30"`
	PhotoURL     string   `json:"photo_url" validate:"omitempty,url"`
}

// EditReportRequest updates moderation-editable fields only. Location and
// status are never editable through this path.
type EditReportRequest struct {
	Type         *string  `json:"type" validate:"omitempty,hazard_type"`
	Description  *string  `json:"description" validate:"omitempty,min=10,max=500"`
	RadiusM      *float64 `json:"radius" validate:"omitempty,gt=0,max=500"`
	DurationDays *int     `json:"duration" validate:"omitempty,min=1,max=30"`
}

func (r EditReportRequest) Empty() bool {
	return r.Type == nil && r.Description == nil && r.RadiusM == nil && r.DurationDays == nil
}

type ListBucketRequest struct {
	Bucket Bucket
	Limit  int
	Cursor string
}

type ListBucketResponse struct {
	Reports    []HazardReport `json:"reports"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

type BucketCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Deleted  int `json:"deleted"`
}

func (c BucketCounts) Total() int {
	return c.Pending + c.Approved + c.Rejected + c.Deleted
}
