// Package view renders the project board and turns user gestures into
// store operations.
//
// Views are small components that share no base type. Each implements
// [Component] and, where it makes sense, one of the drag and drop
// capabilities:
//
//   - [ProjectInput]: the project form; submits validated input to the store
//   - [ProjectList]: a [DropTarget] showing the projects of one status
//   - [ProjectItem]: a [Draggable] card for one project
//
// Components are attached to a [Host] and rendered from the embedded
// dashboard templates. Every list subscribes to the store during
// Configure and fully replaces its items on each notification.
package view
