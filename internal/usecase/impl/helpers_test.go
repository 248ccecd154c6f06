package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/repository"
	"skillhub/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- In-memory user repository ---

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int

	// failCreateWithDuplicate makes the next Create report a duplicate-key
	// conflict, simulating a lost unique-index race.
	failCreateWithDuplicate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	clone := *user

	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByProvider(_ context.Context, provider entity.ProviderType, providerUserID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Provider == provider && user.ProviderUserID == providerUserID && providerUserID != "" {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failCreateWithDuplicate {
		r.failCreateWithDuplicate = false

		return repository.ErrDuplicateUser
	}

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateUser
		}
		if user.ProviderUserID != "" && existing.Provider == user.Provider && existing.ProviderUserID == user.ProviderUserID {
			return repository.ErrDuplicateUser
		}
	}

	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}

	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}

	clone := *user
	r.users[user.ID] = &clone

	return nil
}

// seed inserts a user directly, bypassing Create's duplicate handling.
func (r *fakeUserRepo) seed(user *entity.User) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if user.ID == "" {
		user.ID = "user-" + strconv.Itoa(r.nextID)
	}
	clone := *user
	r.users[user.ID] = &clone

	return user
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users)
}

// --- Fake hasher and token service ---

type fakeHasher struct {
	dummyChecks int
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakeHasher) DummyCheck(string) {
	h.dummyChecks++
}

type fakeTokenService struct{}

func (fakeTokenService) Issue(subject string) (string, error) {
	return "token-for-" + subject, nil
}

func (fakeTokenService) Validate(string) (*service.Claims, error) {
	panic("not used in tests")
}

func (fakeTokenService) ValidateForSubject(string, string) (*service.Claims, error) {
	panic("not used in tests")
}

func (fakeTokenService) Lifetime() time.Duration {
	return time.Hour
}

// --- Fake OAuth verifier ---

type fakeVerifier struct {
	provider entity.ProviderType
	attrs    map[string]any
	err      error
}

func (v *fakeVerifier) VerifyCredential(context.Context, string) (map[string]any, error) {
	if v.err != nil {
		return nil, v.err
	}

	return v.attrs, nil
}

func (v *fakeVerifier) Provider() entity.ProviderType {
	return v.provider
}

// --- In-memory resource repositories ---

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions map[string]*entity.Question
	nextID    int
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[string]*entity.Question)}
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	q.ID = "question-" + strconv.Itoa(r.nextID)
	clone := *q
	r.questions[q.ID] = &clone

	return nil
}

func (r *fakeQuestionRepo) FindByID(_ context.Context, id string) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *q

	return &clone, nil
}

func (r *fakeQuestionRepo) FindAll(context.Context) ([]*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Question, 0, len(r.questions))
	for _, q := range r.questions {
		clone := *q
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *entity.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[q.ID]; !ok {
		return repository.ErrResourceNotFound
	}

	clone := *q
	r.questions[q.ID] = &clone

	return nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.questions, id)

	return nil
}

type fakeAnswerRepo struct {
	mu      sync.Mutex
	answers map[string]*entity.Answer
	nextID  int
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[string]*entity.Answer)}
}

func (r *fakeAnswerRepo) Create(_ context.Context, a *entity.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = "answer-" + strconv.Itoa(r.nextID)
	clone := *a
	r.answers[a.ID] = &clone

	return nil
}

func (r *fakeAnswerRepo) FindByID(_ context.Context, id string) (*entity.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.answers[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *a

	return &clone, nil
}

func (r *fakeAnswerRepo) FindByQuestionID(_ context.Context, questionID string) ([]*entity.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Answer, 0)
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			clone := *a
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeAnswerRepo) Update(_ context.Context, a *entity.Answer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.answers[a.ID]; !ok {
		return repository.ErrResourceNotFound
	}

	clone := *a
	r.answers[a.ID] = &clone

	return nil
}

func (r *fakeAnswerRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.answers[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.answers, id)

	return nil
}

type fakeTutorialRepo struct {
	mu        sync.Mutex
	tutorials map[string]*entity.Tutorial
	nextID    int
}

func newFakeTutorialRepo() *fakeTutorialRepo {
	return &fakeTutorialRepo{tutorials: make(map[string]*entity.Tutorial)}
}

func (r *fakeTutorialRepo) Create(_ context.Context, tu *entity.Tutorial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	tu.ID = "tutorial-" + strconv.Itoa(r.nextID)
	clone := *tu
	r.tutorials[tu.ID] = &clone

	return nil
}

func (r *fakeTutorialRepo) FindByID(_ context.Context, id string) (*entity.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tu, ok := r.tutorials[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *tu

	return &clone, nil
}

func (r *fakeTutorialRepo) FindAll(context.Context) ([]*entity.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Tutorial, 0, len(r.tutorials))
	for _, tu := range r.tutorials {
		clone := *tu
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeTutorialRepo) FindByTag(_ context.Context, tag string) ([]*entity.Tutorial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Tutorial, 0)
	for _, tu := range r.tutorials {
		for _, existing := range tu.Tags {
			if existing == tag {
				clone := *tu
				out = append(out, &clone)

				break
			}
		}
	}

	return out, nil
}

func (r *fakeTutorialRepo) Update(_ context.Context, tu *entity.Tutorial) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tutorials[tu.ID]; !ok {
		return repository.ErrResourceNotFound
	}

	clone := *tu
	r.tutorials[tu.ID] = &clone

	return nil
}

func (r *fakeTutorialRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tutorials[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.tutorials, id)

	return nil
}

type fakeChallengeRepo struct {
	mu         sync.Mutex
	challenges map[string]*entity.Challenge
	nextID     int
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[string]*entity.Challenge)}
}

func (r *fakeChallengeRepo) Create(_ context.Context, ch *entity.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	ch.ID = "challenge-" + strconv.Itoa(r.nextID)
	clone := *ch
	r.challenges[ch.ID] = &clone

	return nil
}

func (r *fakeChallengeRepo) FindByID(_ context.Context, id string) (*entity.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *ch

	return &clone, nil
}

func (r *fakeChallengeRepo) FindAll(context.Context) ([]*entity.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Challenge, 0, len(r.challenges))
	for _, ch := range r.challenges {
		clone := *ch
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeChallengeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.challenges[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.challenges, id)

	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment
	nextID   int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, cm *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	cm.ID = "comment-" + strconv.Itoa(r.nextID)
	clone := *cm
	r.comments[cm.ID] = &clone

	return nil
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cm, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *cm

	return &clone, nil
}

func (r *fakeCommentRepo) FindByChallengeID(_ context.Context, challengeID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Comment, 0)
	for _, cm := range r.comments {
		if cm.ChallengeID == challengeID {
			clone := *cm
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, cm *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[cm.ID]; !ok {
		return repository.ErrResourceNotFound
	}

	clone := *cm
	r.comments[cm.ID] = &clone

	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.comments, id)

	return nil
}

type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[string]*entity.Course
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*entity.Course)}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	course.ID = "course-" + strconv.Itoa(r.nextID)
	clone := *course
	r.courses[course.ID] = &clone

	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id string) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *course

	return &clone, nil
}

func (r *fakeCourseRepo) FindAll(context.Context) ([]*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Course, 0, len(r.courses))
	for _, course := range r.courses {
		clone := *course
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[course.ID]; !ok {
		return repository.ErrResourceNotFound
	}

	clone := *course
	r.courses[course.ID] = &clone

	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.courses[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.courses, id)

	return nil
}

type fakeLessonRepo struct {
	mu      sync.Mutex
	lessons map[string]*entity.Lesson
	nextID  int
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[string]*entity.Lesson)}
}

func (r *fakeLessonRepo) Create(_ context.Context, lesson *entity.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	lesson.ID = "lesson-" + strconv.Itoa(r.nextID)
	clone := *lesson
	r.lessons[lesson.ID] = &clone

	return nil
}

func (r *fakeLessonRepo) FindByID(_ context.Context, id string) (*entity.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lesson, ok := r.lessons[id]
	if !ok {
		return nil, repository.ErrResourceNotFound
	}

	clone := *lesson

	return &clone, nil
}

func (r *fakeLessonRepo) FindByCourseID(_ context.Context, courseID string) ([]*entity.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Lesson, 0)
	for _, lesson := range r.lessons {
		if lesson.CourseID == courseID {
			clone := *lesson
			out = append(out, &clone)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	return out, nil
}

func (r *fakeLessonRepo) Update(_ context.Context, lesson *entity.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lessons[lesson.ID]; !ok {
		return repository.ErrResourceNotFound
	}

	clone := *lesson
	r.lessons[lesson.ID] = &clone

	return nil
}

func (r *fakeLessonRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lessons[id]; !ok {
		return repository.ErrResourceNotFound
	}

	delete(r.lessons, id)

	return nil
}
