// Package k8sutil is the Reconciliation Framework's CR I/O layer: get/list/
// create/patch/delete/finalizer helpers over a controller-runtime
// client.Client, with the error classification spec.md §4.1 describes
// (NotFound -> absence, AlreadyExists -> success) applied uniformly so
// individual controllers never type-switch on apierrors themselves. The
// patch path is grounded on pkg/storage/kubernetes/ipam.go's
// resourceVersion-guarded update, generalized from a one-off JSON-patch
// trick into server-side apply under a stable field manager.
package k8sutil

import (
	"context"

	"github.com/pkg/errors"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	cnmv1 "github.com/juniper/cnm/api/v1"
)

// Option is a minimal Rust-flavored option type: the CR I/O helpers map a
// NotFound API error to None rather than propagating it as an error.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }
func None[T any]() Option[T]    { return Option[T]{} }

func (o Option[T]) Get() (T, bool) { return o.value, o.ok }
func (o Option[T]) IsSome() bool   { return o.ok }

// Get fetches ns/name into obj. A NotFound API error is mapped to None,
// not an error.
func Get[T client.Object](ctx context.Context, c client.Client, ns, name string, obj T) (Option[T], error) {
	err := c.Get(ctx, client.ObjectKey{Namespace: ns, Name: name}, obj)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return None[T](), nil
		}
		return None[T](), errors.Wrapf(err, "get %s/%s", ns, name)
	}
	return Some(obj), nil
}

// List fills list with every object in ns matching sel. A nil or empty
// selector means "all objects in the namespace", matching spec.md §4.1.
func List(ctx context.Context, c client.Client, ns string, sel labels.Selector, list client.ObjectList) error {
	opts := []client.ListOption{client.InNamespace(ns)}
	if sel != nil && !sel.Empty() {
		opts = append(opts, client.MatchingLabelsSelector{Selector: sel})
	}
	if err := c.List(ctx, list, opts...); err != nil {
		return errors.Wrapf(err, "list in %s", ns)
	}
	return nil
}

// Create creates obj. AlreadyExists is mapped to success: the caller
// reconciles by patch on its next pass.
func Create(ctx context.Context, c client.Client, obj client.Object) error {
	if err := c.Create(ctx, obj); err != nil {
		if apierrors.IsAlreadyExists(err) {
			return nil
		}
		return errors.Wrap(err, "create")
	}
	return nil
}

// PatchMerge applies obj under the stable "crpd" field manager via
// server-side apply, matching spec.md's "patch* uses server-side-apply
// semantics under a stable field-manager name".
func PatchMerge(ctx context.Context, c client.Client, obj client.Object) error {
	if err := c.Patch(ctx, obj, client.Apply, client.ForceOwnership, client.FieldOwner(cnmv1.FieldManager)); err != nil {
		return errors.Wrap(err, "patch")
	}
	return nil
}

// PatchStatus is PatchMerge against the status subresource.
func PatchStatus(ctx context.Context, c client.Client, obj client.Object) error {
	if err := c.Status().Patch(ctx, obj, client.Apply, client.ForceOwnership, client.FieldOwner(cnmv1.FieldManager)); err != nil {
		return errors.Wrap(err, "patch status")
	}
	return nil
}

// Replace issues a full Update, superseding whatever the server currently
// holds for obj's resourceVersion. Used where the caller has just re-read
// the object and intends a read-modify-write, not a merge.
func Replace(ctx context.Context, c client.Client, obj client.Object) error {
	if err := c.Update(ctx, obj); err != nil {
		return errors.Wrap(err, "replace")
	}
	return nil
}

// Delete deletes ns/name. NotFound is mapped to success.
func Delete(ctx context.Context, c client.Client, obj client.Object) error {
	if err := c.Delete(ctx, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(err, "delete")
	}
	return nil
}

// AddFinalizer adds tag to obj and persists it, if not already present.
func AddFinalizer(ctx context.Context, c client.Client, obj client.Object, tag string) error {
	if controllerutil.ContainsFinalizer(obj, tag) {
		return nil
	}
	controllerutil.AddFinalizer(obj, tag)
	return Replace(ctx, c, obj)
}

// DelFinalizer removes tag from obj and persists it, if present.
func DelFinalizer(ctx context.Context, c client.Client, obj client.Object, tag string) error {
	if !controllerutil.ContainsFinalizer(obj, tag) {
		return nil
	}
	controllerutil.RemoveFinalizer(obj, tag)
	return Replace(ctx, c, obj)
}

// CreateOrUpdate fetches ns/name; if present, patch-merges obj over it; if
// absent, creates obj. mutate lets the caller fill in obj's spec/labels
// immediately before the write, after the existing resourceVersion (if
// any) has been copied onto it.
func CreateOrUpdate[T client.Object](ctx context.Context, c client.Client, ns, name string, newObj func() T, mutate func(T)) error {
	existing := newObj()
	found, err := Get(ctx, c, ns, name, existing)
	if err != nil {
		return err
	}
	obj := newObj()
	if cur, ok := found.Get(); ok {
		obj = cur
	} else {
		obj.SetNamespace(ns)
		obj.SetName(name)
	}
	mutate(obj)
	if found.IsSome() {
		return PatchMerge(ctx, c, obj)
	}
	return Create(ctx, c, obj)
}

// IsTransient classifies an API error per spec.md §7: anything other than
// not-found/already-exists (already filtered out by Get/Create/Delete
// above) is a transient-API error the framework retries with backoff.
func IsTransient(err error) bool {
	return err != nil
}
