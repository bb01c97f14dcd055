// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rgoyal/studyhall/ent/activityevent"
	"github.com/rgoyal/studyhall/ent/group"
	"github.com/rgoyal/studyhall/ent/llmrequestevent"
	"github.com/rgoyal/studyhall/ent/quiz"
	"github.com/rgoyal/studyhall/ent/schema"
	"github.com/rgoyal/studyhall/ent/todo"
	"github.com/rgoyal/studyhall/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[0].Descriptor()
	// activityevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityevent.UserIDValidator = activityeventDescUserID.Validators[0].(func(string) error)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[1].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescTodoTitle is the schema descriptor for todo_title field.
	activityeventDescTodoTitle := activityeventFields[2].Descriptor()
	// activityevent.DefaultTodoTitle holds the default value on creation for the todo_title field.
	activityevent.DefaultTodoTitle = activityeventDescTodoTitle.Default.(string)
	// activityeventDescMessage is the schema descriptor for message field.
	activityeventDescMessage := activityeventFields[3].Descriptor()
	// activityevent.DefaultMessage holds the default value on creation for the message field.
	activityevent.DefaultMessage = activityeventDescMessage.Default.(string)
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescOwnerID is the schema descriptor for owner_id field.
	groupDescOwnerID := groupFields[1].Descriptor()
	// group.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	group.OwnerIDValidator = groupDescOwnerID.Validators[0].(func(string) error)
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[2].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// groupDescDescription is the schema descriptor for description field.
	groupDescDescription := groupFields[3].Descriptor()
	// group.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	group.DescriptionValidator = groupDescDescription.Validators[0].(func(string) error)
	// groupDescIsPublic is the schema descriptor for is_public field.
	groupDescIsPublic := groupFields[5].Descriptor()
	// group.DefaultIsPublic holds the default value on creation for the is_public field.
	group.DefaultIsPublic = groupDescIsPublic.Default.(bool)
	// groupDescMaxMembers is the schema descriptor for max_members field.
	groupDescMaxMembers := groupFields[6].Descriptor()
	// group.DefaultMaxMembers holds the default value on creation for the max_members field.
	group.DefaultMaxMembers = groupDescMaxMembers.Default.(int)
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupFields[8].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescID is the schema descriptor for id field.
	groupDescID := groupFields[0].Descriptor()
	// group.DefaultID holds the default value on creation for the id field.
	group.DefaultID = groupDescID.Default.(func() string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescUserID is the schema descriptor for user_id field.
	quizDescUserID := quizFields[1].Descriptor()
	// quiz.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quiz.UserIDValidator = quizDescUserID.Validators[0].(func(string) error)
	// quizDescMaterialTitle is the schema descriptor for material_title field.
	quizDescMaterialTitle := quizFields[2].Descriptor()
	// quiz.MaterialTitleValidator is a validator for the "material_title" field. It is called by the builders before save.
	quiz.MaterialTitleValidator = quizDescMaterialTitle.Validators[0].(func(string) error)
	// quizDescModel is the schema descriptor for model field.
	quizDescModel := quizFields[4].Descriptor()
	// quiz.DefaultModel holds the default value on creation for the model field.
	quiz.DefaultModel = quizDescModel.Default.(string)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[5].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescID is the schema descriptor for id field.
	quizDescID := quizFields[0].Descriptor()
	// quiz.DefaultID holds the default value on creation for the id field.
	quiz.DefaultID = quizDescID.Default.(func() string)
	todoFields := schema.Todo{}.Fields()
	_ = todoFields
	// todoDescUserID is the schema descriptor for user_id field.
	todoDescUserID := todoFields[1].Descriptor()
	// todo.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	todo.UserIDValidator = todoDescUserID.Validators[0].(func(string) error)
	// todoDescTitle is the schema descriptor for title field.
	todoDescTitle := todoFields[2].Descriptor()
	// todo.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	todo.TitleValidator = func() func(string) error {
		validators := todoDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// todoDescDescription is the schema descriptor for description field.
	todoDescDescription := todoFields[3].Descriptor()
	// todo.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	todo.DescriptionValidator = todoDescDescription.Validators[0].(func(string) error)
	// todoDescStatus is the schema descriptor for status field.
	todoDescStatus := todoFields[5].Descriptor()
	// todo.DefaultStatus holds the default value on creation for the status field.
	todo.DefaultStatus = todoDescStatus.Default.(string)
	// todoDescType is the schema descriptor for type field.
	todoDescType := todoFields[6].Descriptor()
	// todo.DefaultType holds the default value on creation for the type field.
	todo.DefaultType = todoDescType.Default.(string)
	// todoDescCreatedAt is the schema descriptor for created_at field.
	todoDescCreatedAt := todoFields[9].Descriptor()
	// todo.DefaultCreatedAt holds the default value on creation for the created_at field.
	todo.DefaultCreatedAt = todoDescCreatedAt.Default.(func() time.Time)
	// todoDescUpdatedAt is the schema descriptor for updated_at field.
	todoDescUpdatedAt := todoFields[10].Descriptor()
	// todo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	todo.DefaultUpdatedAt = todoDescUpdatedAt.Default.(func() time.Time)
	// todo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	todo.UpdateDefaultUpdatedAt = todoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// todoDescID is the schema descriptor for id field.
	todoDescID := todoFields[0].Descriptor()
	// todo.DefaultID holds the default value on creation for the id field.
	todo.DefaultID = todoDescID.Default.(func() string)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescTimezone is the schema descriptor for timezone field.
	userDescTimezone := userFields[3].Descriptor()
	// user.DefaultTimezone holds the default value on creation for the timezone field.
	user.DefaultTimezone = userDescTimezone.Default.(string)
	// userDescEducationLevel is the schema descriptor for education_level field.
	userDescEducationLevel := userFields[6].Descriptor()
	// user.DefaultEducationLevel holds the default value on creation for the education_level field.
	user.DefaultEducationLevel = userDescEducationLevel.Default.(string)
	// userDescStudyStyle is the schema descriptor for study_style field.
	userDescStudyStyle := userFields[8].Descriptor()
	// user.DefaultStudyStyle holds the default value on creation for the study_style field.
	user.DefaultStudyStyle = userDescStudyStyle.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[9].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[10].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() string)
}
