package model

import "time"

// AppState — единый JSON-документ структурированного состояния приложения
// (предметы, задачи, цели, привычки, посещаемость, помодоро-сессии, настройки).
// Хранится целиком под одним ключом; частичных обновлений на уровне
// хранилища нет — только замена секции или всего документа.
type AppState struct {
	Subjects   []Subject          `json:"subjects"`
	Tasks      []Task             `json:"tasks"`
	Goals      []Goal             `json:"goals"`
	Habits     []Habit            `json:"habits"`
	Attendance []AttendanceEntry  `json:"attendance"`
	Sessions   []PomodoroSession  `json:"sessions"`
	Settings   Settings           `json:"settings"`
}

// Subject — учебный предмет.
type Subject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Teacher   string    `json:"teacher,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Task — задача с опциональной привязкой к предмету.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject,omitempty"`
	Due       *time.Time `json:"due,omitempty"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
}

// Goal — долгосрочная цель.
type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Progress  int       `json:"progress"` // 0..100
	CreatedAt time.Time `json:"created_at"`
}

// Habit — привычка с отметками выполнения по дням.
type Habit struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Ticks   []string `json:"ticks"` // даты в формате 2006-01-02
	Streak  int      `json:"streak"`
	Created time.Time `json:"created_at"`
}

// AttendanceEntry — отметка посещаемости одного занятия.
type AttendanceEntry struct {
	Subject string `json:"subject"`
	Date    string `json:"date"` // 2006-01-02
	Present bool   `json:"present"`
}

// PomodoroSession — завершённая помодоро-сессия.
type PomodoroSession struct {
	Subject    string    `json:"subject,omitempty"`
	Minutes    int       `json:"minutes"`
	FinishedAt time.Time `json:"finished_at"`
}

// Settings — пользовательские настройки дашборда.
type Settings struct {
	DisplayName     string `json:"display_name,omitempty"`
	PomodoroMinutes int    `json:"pomodoro_minutes"`
	BreakMinutes    int    `json:"break_minutes"`
}

// DefaultState возвращает состояние нового пользователя.
func DefaultState() *AppState {
	return &AppState{
		Subjects:   []Subject{},
		Tasks:      []Task{},
		Goals:      []Goal{},
		Habits:     []Habit{},
		Attendance: []AttendanceEntry{},
		Sessions:   []PomodoroSession{},
		Settings: Settings{
			PomodoroMinutes: 25,
			BreakMinutes:    5,
		},
	}
}
