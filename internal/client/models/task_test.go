package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusPriorityOrder(t *testing.T) {
	require.Less(t, StatusIncomplete.Priority(), StatusInProgress.Priority())
	require.Less(t, StatusInProgress.Priority(), StatusComplete.Priority())
}

func TestStatusNextCycles(t *testing.T) {
	require.Equal(t, StatusInProgress, StatusIncomplete.Next())
	require.Equal(t, StatusComplete, StatusInProgress.Next())
	require.Equal(t, StatusIncomplete, StatusComplete.Next())
}

func TestNormalize_LegacyRecordDerivesStatus(t *testing.T) {
	done := Task{ID: 1, Text: "old", Completed: true}
	done.Normalize()
	require.Equal(t, StatusComplete, done.Status)

	open := Task{ID: 2, Text: "old", Completed: false}
	open.Normalize()
	require.Equal(t, StatusIncomplete, open.Status)
}

func TestNormalize_StatusDrivesCompletedFlag(t *testing.T) {
	task := Task{ID: 1, Text: "t", Status: StatusComplete}
	task.Normalize()
	require.True(t, task.Completed)

	task.Status = StatusInProgress
	task.Normalize()
	require.False(t, task.Completed)
}

func TestGroupByCategory_Partitions(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "hw", Category: CategorySchool, Status: StatusIncomplete},
		{ID: 2, Text: "report", Category: CategoryWork, Status: StatusIncomplete},
		{ID: 3, Text: "milk", Category: CategoryPersonal, Status: StatusIncomplete},
		{ID: 4, Text: "essay", Category: CategorySchool, Status: StatusIncomplete},
	}

	groups := GroupByCategory(tasks)
	require.Len(t, groups[CategorySchool], 2)
	require.Len(t, groups[CategoryWork], 1)
	require.Len(t, groups[CategoryPersonal], 1)
}

func TestGroupByCategory_CompleteSortsLast(t *testing.T) {
	tasks := []Task{
		{ID: 1, Category: CategoryWork, Status: StatusComplete},
		{ID: 2, Category: CategoryWork, Status: StatusInProgress},
		{ID: 3, Category: CategoryWork, Status: StatusIncomplete},
	}

	group := GroupByCategory(tasks)[CategoryWork]
	require.Equal(t, []int64{3, 2, 1}, []int64{group[0].ID, group[1].ID, group[2].ID})
}

func TestGroupByCategory_StableWithinEqualStatus(t *testing.T) {
	// Tasks of equal status must keep their insertion order.
	tasks := []Task{
		{ID: 10, Category: CategoryPersonal, Status: StatusIncomplete},
		{ID: 11, Category: CategoryPersonal, Status: StatusComplete},
		{ID: 12, Category: CategoryPersonal, Status: StatusIncomplete},
		{ID: 13, Category: CategoryPersonal, Status: StatusIncomplete},
		{ID: 14, Category: CategoryPersonal, Status: StatusComplete},
	}

	group := GroupByCategory(tasks)[CategoryPersonal]
	var ids []int64
	for _, task := range group {
		ids = append(ids, task.ID)
	}
	require.Equal(t, []int64{10, 12, 13, 11, 14}, ids)
}
