package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseCase(t *testing.T) {
	dir := t.TempDir()

	created, err := UseCase(UseCaseOptions{
		Name:           "CreateCustomer",
		Kind:           KindCommand,
		ApplicationDir: dir,
		Namespace:      "App.Application",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "UseCases", "CreateCustomer"), created)

	request := readFile(t, filepath.Join(created, "CreateCustomerRequest.cs"))
	assert.Contains(t, request, "public record CreateCustomerRequest();")
	assert.Contains(t, request, "namespace App.Application;")

	result := readFile(t, filepath.Join(created, "CreateCustomerResult.cs"))
	assert.Contains(t, result, "public record CreateCustomerResult();")

	handler := readFile(t, filepath.Join(created, "CreateCustomerHandler.cs"))
	assert.Contains(t, handler, "public class CreateCustomerHandler")
	assert.Contains(t, handler, "Task<CreateCustomerResult> Handle(CreateCustomerRequest request, CancellationToken cancellationToken)")
	assert.Contains(t, handler, "throw new NotImplementedException();")
}

func TestUseCase_QueryKind(t *testing.T) {
	dir := t.TempDir()

	created, err := UseCase(UseCaseOptions{
		Name:           "GetCustomer",
		Kind:           KindQuery,
		ApplicationDir: dir,
		Namespace:      "App.Application",
	})
	require.NoError(t, err)
	assert.DirExists(t, created)
}

func TestUseCase_InvalidKind(t *testing.T) {
	_, err := UseCase(UseCaseOptions{
		Name:           "GetCustomer",
		Kind:           "mutation",
		ApplicationDir: t.TempDir(),
		Namespace:      "App.Application",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type must be")
}

func TestUseCase_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	opts := UseCaseOptions{
		Name:           "CreateCustomer",
		Kind:           KindCommand,
		ApplicationDir: dir,
		Namespace:      "App.Application",
	}

	_, err := UseCase(opts)
	require.NoError(t, err)

	_, err = UseCase(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUseCase_NameValidation(t *testing.T) {
	_, err := UseCase(UseCaseOptions{
		Name:           "createCustomer",
		Kind:           KindCommand,
		ApplicationDir: t.TempDir(),
		Namespace:      "X",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercase")
}
