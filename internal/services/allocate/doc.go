// Package allocate turns share weights into cent-exact amounts.
//
// Each participant's portion is amount*weight/total rounded half away from
// zero to whole cents. Rounding can leave the portions a few cents short of
// (or over) the amount; those cents are handed out one at a time to randomly
// chosen participants with a positive weight until the portions sum exactly
// to the amount. Nobody is going to squabble over a penny.
package allocate
