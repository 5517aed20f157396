package services

import (
	"errors"
	"fmt"

	"taskflow/taskflow/database"
	"taskflow/taskflow/models"

	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	GetAllTasks(db *database.Database) ([]models.Task, error)
	GetTaskByID(db *database.Database, id uint) (models.Task, error)
	CreateTask(db *database.Database, input models.TaskInput) (models.Task, error)
	UpdateTask(db *database.Database, id uint, input models.TaskInput) (models.Task, error)
	DeleteTask(db *database.Database, id uint) error
	CountTasks(db *database.Database) (int64, error)
}

type TaskService struct{}

// GetAllTasks returns every task newest first. The id tiebreak keeps the
// order stable when two rows share a created_at tick.
func (s *TaskService) GetAllTasks(db *database.Database) ([]models.Task, error) {
	var tasks []models.Task
	if err := db.DB.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(db *database.Database, id uint) (models.Task, error) {
	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

// CreateTask validates the input before touching storage, then inserts and
// returns the fully populated task including the generated id and created_at.
func (s *TaskService) CreateTask(db *database.Database, input models.TaskInput) (models.Task, error) {
	if err := input.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
	}
	if err := db.DB.Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces title and description of the matching row. There are no
// partial updates; both fields are required. id and created_at never change.
func (s *TaskService) UpdateTask(db *database.Database, id uint, input models.TaskInput) (models.Task, error) {
	if err := input.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var task models.Task
	if err := db.DB.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
	}
	if err := db.DB.Model(&task).Updates(updates).Error; err != nil {
		return models.Task{}, err
	}

	task.Title = input.Title
	task.Description = input.Description
	return task, nil
}

// DeleteTask is a hard delete. A miss is reported as ErrTaskNotFound rather
// than success so the handler can answer 404 on the second of two deletes.
func (s *TaskService) DeleteTask(db *database.Database, id uint) error {
	result := db.DB.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *TaskService) CountTasks(db *database.Database) (int64, error) {
	var count int64
	if err := db.DB.Model(&models.Task{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
