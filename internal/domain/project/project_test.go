package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject("Sito vetrina", "restyling", StatusPlanning, nil, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.SID(), "prj_"))
	assert.Equal(t, StatusPlanning, p.Status())
	assert.Nil(t, p.ClientID())

	_, err = NewProject("", "", StatusActive, nil, nil)
	assert.Error(t, err)

	_, err = NewProject("Sito", "", Status("archived"), nil, nil)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusPlanning, s)

	s, err = ParseStatus("  On_Hold ")
	require.NoError(t, err)
	assert.Equal(t, StatusOnHold, s)

	_, err = ParseStatus("frozen")
	assert.Error(t, err)
}

func TestProject_ClearClient(t *testing.T) {
	clientID := uint(7)
	p, err := NewProject("Sito", "", StatusActive, &clientID, nil)
	require.NoError(t, err)
	require.NotNil(t, p.ClientID())

	p.ClearClient()
	assert.Nil(t, p.ClientID())
}

func TestNewTask(t *testing.T) {
	task, err := NewTask(1, "Bozza homepage", TaskStatusTodo)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(task.SID(), "tsk_"))
	assert.Equal(t, uint(1), task.ProjectID())

	_, err = NewTask(0, "Bozza", TaskStatusTodo)
	assert.Error(t, err)

	_, err = NewTask(1, "", TaskStatusTodo)
	assert.Error(t, err)

	_, err = NewTask(1, "Bozza", TaskStatus("blocked"))
	assert.Error(t, err)
}

func TestTask_Update(t *testing.T) {
	task, err := NewTask(1, "Bozza", TaskStatusTodo)
	require.NoError(t, err)

	require.NoError(t, task.Update("Bozza finale", TaskStatusDone))
	assert.Equal(t, "Bozza finale", task.Title())
	assert.Equal(t, TaskStatusDone, task.Status())

	assert.Error(t, task.Update("", TaskStatusDone))
}

func TestProgress(t *testing.T) {
	mustTask := func(status TaskStatus) *Task {
		task, err := NewTask(1, "t", status)
		require.NoError(t, err)
		return task
	}

	assert.Equal(t, float64(0), Progress(nil))
	assert.Equal(t, float64(0), Progress([]*Task{}))

	tasks := []*Task{
		mustTask(TaskStatusDone),
		mustTask(TaskStatusTodo),
		mustTask(TaskStatusInProgress),
		mustTask(TaskStatusDone),
	}
	assert.InDelta(t, 0.5, Progress(tasks), 1e-9)

	all := []*Task{mustTask(TaskStatusDone), mustTask(TaskStatusDone)}
	assert.Equal(t, float64(1), Progress(all))
}
