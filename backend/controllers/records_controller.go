package controllers

import (
	"errors"
	"time"

	"studytracker/backend/config"
	"studytracker/backend/models"
	"studytracker/backend/stats"
	"studytracker/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecordsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRecordsController(db *gorm.DB, cfg *config.Config) *RecordsController {
	return &RecordsController{DB: db, Cfg: cfg}
}

// List godoc
// @Summary List study records
// @Description Returns the user's study records, optionally filtered by date range and subject
// @Tags records
// @Produce json
// @Param date_from query string false "Range start (YYYY-MM-DD)"
// @Param date_to query string false "Range end (YYYY-MM-DD)"
// @Param subject query string false "Exact subject match"
// @Success 200 {array} models.StudyRecord
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /records [get]
func (rc *RecordsController) List(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	q := rc.DB.Where("user_id = ?", userID)

	if dateFrom := c.Query("date_from"); dateFrom != "" {
		if _, err := utils.ParseDate(dateFrom); err != nil {
			return utils.BadRequest(c, "Invalid date_from format. Use YYYY-MM-DD")
		}
		q = q.Where("study_date >= ?", dateFrom)
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		if _, err := utils.ParseDate(dateTo); err != nil {
			return utils.BadRequest(c, "Invalid date_to format. Use YYYY-MM-DD")
		}
		q = q.Where("study_date <= ?", dateTo)
	}
	if subject := c.Query("subject"); subject != "" {
		q = q.Where("subject = ?", subject)
	}

	var records []models.StudyRecord
	if err := q.Order("study_date desc, created_at desc").Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Could not query records")
	}

	return c.JSON(records)
}

// Create godoc
// @Summary Log a study session
// @Tags records
// @Accept json
// @Produce json
// @Success 201 {object} models.StudyRecord
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /records [post]
func (rc *RecordsController) Create(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input models.StudyRecordCreate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	record := models.StudyRecord{
		RecordID:        uuid.New().String(),
		UserID:          userID,
		StudyDate:       input.StudyDate,
		Subject:         input.Subject,
		DurationMinutes: input.DurationMinutes,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Memo:            input.Memo,
		GoalID:          input.GoalID,
	}
	if err := rc.DB.Create(&record).Error; err != nil {
		return utils.InternalServerError(c, "Could not create record")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (rc *RecordsController) Get(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var record models.StudyRecord
	err = rc.DB.Where("user_id = ? AND record_id = ?", userID, c.Params("id")).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Study record not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(record)
}

// Update applies a partial update; absent fields keep their value.
func (rc *RecordsController) Update(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var record models.StudyRecord
	err = rc.DB.Where("user_id = ? AND record_id = ?", userID, c.Params("id")).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Study record not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var input models.StudyRecordUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if input.StudyDate != nil {
		record.StudyDate = *input.StudyDate
	}
	if input.Subject != nil {
		record.Subject = *input.Subject
	}
	if input.DurationMinutes != nil {
		record.DurationMinutes = *input.DurationMinutes
	}
	if input.StartTime != nil {
		record.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		record.EndTime = *input.EndTime
	}
	if input.Memo != nil {
		record.Memo = *input.Memo
	}
	if input.GoalID != nil {
		record.GoalID = *input.GoalID
	}

	if err := rc.DB.Save(&record).Error; err != nil {
		return utils.InternalServerError(c, "Could not update record")
	}

	return c.JSON(record)
}

func (rc *RecordsController) Delete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	res := rc.DB.Where("user_id = ? AND record_id = ?", userID, c.Params("id")).
		Delete(&models.StudyRecord{})
	if res.Error != nil {
		return utils.InternalServerError(c, "Could not delete record")
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(c, "Study record not found")
	}

	return utils.NoContent(c)
}

// StatsSummary godoc
// @Summary Aggregate stats for a date range
// @Tags records
// @Produce json
// @Param date_from query string true "Range start (YYYY-MM-DD)"
// @Param date_to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} models.StudyStatsSummary
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/stats/summary [get]
func (rc *RecordsController) StatsSummary(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	dateFrom := c.Query("date_from")
	dateTo := c.Query("date_to")
	if _, err := utils.ParseDate(dateFrom); err != nil {
		return utils.BadRequest(c, "Invalid date_from format. Use YYYY-MM-DD")
	}
	if _, err := utils.ParseDate(dateTo); err != nil {
		return utils.BadRequest(c, "Invalid date_to format. Use YYYY-MM-DD")
	}

	var records []models.StudyRecord
	err = rc.DB.Where("user_id = ? AND study_date BETWEEN ? AND ?", userID, dateFrom, dateTo).
		Find(&records).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query records")
	}

	return c.JSON(stats.Summarize(records))
}

// CalendarData godoc
// @Summary Per-day aggregates for a month
// @Description Returns a sparse list of day rollups; days without records are omitted
// @Tags records
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} models.CalendarDay
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /records/stats/calendar [get]
func (rc *RecordsController) CalendarData(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 1 || month < 1 || month > 12 {
		return utils.BadRequest(c, "Invalid year or month")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	dateFrom := utils.FormatDate(first)
	dateTo := utils.FormatDate(first.AddDate(0, 1, -1))

	var records []models.StudyRecord
	err = rc.DB.Where("user_id = ? AND study_date BETWEEN ? AND ?", userID, dateFrom, dateTo).
		Find(&records).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not query records")
	}

	return c.JSON(stats.ToCalendarDays(records))
}
