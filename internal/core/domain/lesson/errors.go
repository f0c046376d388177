package lesson

import "errors"

var ErrLessonDoesNotExist = errors.New("lesson does not exist")
