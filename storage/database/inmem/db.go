// Package inmemdb provides mutex-guarded in-memory repositories for tests.
package inmemdb

import (
	"sync"

	"github.com/ErickRdzRm7/EduAI/core/topic"
	"github.com/ErickRdzRm7/EduAI/core/user"
)

type (
	DB struct {
		user  *userTable
		topic *topicTable
	}

	userTable struct {
		table map[string]*user.User
		mutex sync.RWMutex
	}

	topicTable struct {
		table map[string]*topic.Topic
		mutex sync.RWMutex
	}
)

func Open() *DB {
	return &DB{
		user:  &userTable{table: make(map[string]*user.User)},
		topic: &topicTable{table: make(map[string]*topic.Topic)},
	}
}
