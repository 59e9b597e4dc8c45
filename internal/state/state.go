// internal/state/state.go
package state

import (
	"log"

	"github.com/sthaarwin/10-min-chaos/internal/component"
	"github.com/sthaarwin/10-min-chaos/internal/input"
	"github.com/sthaarwin/10-min-chaos/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Phase() component.Phase
	Enter()
	Update(in input.Frame)
	Draw(r render.Renderer)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	done    bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
		log.Printf("[StateMachine] %s -> %s", sm.current.Phase(), newState.Phase())
	}
	sm.current = newState
	sm.current.Enter()
}

// Update обновляет текущее состояние. После Quit ничего не делает.
func (sm *StateMachine) Update(in input.Frame) {
	if sm.current != nil && !sm.done {
		sm.current.Update(in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r render.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}

// Phase возвращает фазу текущего состояния.
func (sm *StateMachine) Phase() component.Phase {
	if sm.current == nil {
		return component.PhaseStart
	}
	return sm.current.Phase()
}

// Quit помечает игру завершённой.
func (sm *StateMachine) Quit() {
	sm.done = true
}

// Done сообщает, что игрок выбрал выход.
func (sm *StateMachine) Done() bool {
	return sm.done
}
